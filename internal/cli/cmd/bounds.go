package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/linkpeek/internal/cli/styles"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/ui/component"
)

var (
	boundsAnchor    string
	boundsViewport  string
	boundsMaxWidth  int
	boundsMaxHeight int
	boundsPlain     bool
)

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Compute where a preview panel would be placed",
	Long: `Computes the preview rectangle for a link anchor inside a viewport.

The panel opens below the link when it fits, above it when there is more
room there, and is always clamped inside the viewport.

Examples:
  linkpeek bounds --anchor 100,700,80,18 --viewport 1280,800
  linkpeek bounds --anchor 10,10,50,20 --viewport 400,300 --max-width 200 --plain`,
	RunE: runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)

	boundsCmd.Flags().StringVar(&boundsAnchor, "anchor", "", "anchor rect as left,top,width,height")
	boundsCmd.Flags().StringVar(&boundsViewport, "viewport", "1280,800", "viewport size as width,height")
	boundsCmd.Flags().IntVar(&boundsMaxWidth, "max-width", entity.DefaultMaxPreviewWidthPx, "maximum panel width")
	boundsCmd.Flags().IntVar(&boundsMaxHeight, "max-height", entity.DefaultMaxPreviewHeightPx, "maximum panel height")
	boundsCmd.Flags().BoolVar(&boundsPlain, "plain", false, "print left,top,width,height and side only")
	_ = boundsCmd.MarkFlagRequired("anchor")
}

func runBounds(cmd *cobra.Command, _ []string) error {
	anchor, err := parseFloats(boundsAnchor, 4)
	if err != nil {
		return fmt.Errorf("--anchor: %w", err)
	}
	viewport, err := parseFloats(boundsViewport, 2)
	if err != nil {
		return fmt.Errorf("--viewport: %w", err)
	}
	if boundsMaxWidth <= 0 || boundsMaxHeight <= 0 {
		return fmt.Errorf("--max-width and --max-height must be positive")
	}

	rect := entity.Rect{Left: anchor[0], Top: anchor[1], Width: anchor[2], Height: anchor[3]}
	size := entity.Size{Width: viewport[0], Height: viewport[1]}
	placement := component.ComputePreviewBounds(rect, size, float64(boundsMaxWidth), float64(boundsMaxHeight))

	renderer := styles.NewBoundsRenderer(styles.NewTheme())
	if boundsPlain {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPlain(placement))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(rect, size, placement))
	return nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out[i] = v
	}
	return out, nil
}
