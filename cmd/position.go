package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/clickmate/internal/backend"
)

var positionVerbose bool

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Print the current pointer position",
	RunE:  runPosition,
}

func init() {
	positionCmd.Flags().BoolVarP(&positionVerbose, "verbose", "v", false, "Also print button state and screen bounds")
	rootCmd.AddCommand(positionCmd)
}

func runPosition(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	pos := eng.Position()
	fmt.Printf("%d %d\n", pos.X, pos.Y)

	if !positionVerbose {
		return nil
	}

	w, h, err := eng.ScreenBounds()
	if err != nil {
		return err
	}
	fmt.Printf("screen: %dx%d\n", w, h)

	for _, b := range []backend.Button{backend.ButtonPrimary, backend.ButtonSecondary, backend.ButtonTertiary} {
		state := "released"
		if eng.IsPressed(b) {
			state = "pressed"
		}
		fmt.Printf("%s: %s\n", b, state)
	}
	return nil
}
