package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vanirdb/vanir-go/pkg/buff"
	"github.com/vanirdb/vanir-go/pkg/codecs"
)

var encodeMode string

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <mapping>",
	Short: "Encode a value or argument mapping into a wire frame",
	Long: `Encode a YAML mapping into a named tuple wire frame and print it
as hex.

In value mode the mapping must carry exactly the schema's fields with no
nulls. In args mode missing fields encode as wire nulls and extra names are
rejected.

Example:
  vanirwire encode --schema point.yaml '{x: 1, y: 2}'
  vanirwire encode --schema point.yaml --mode args '{x: 1}'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		frame, err := encodeMapping(loadedCodec, args[0], encodeMode)
		if err != nil {
			fmt.Printf("Error encoding: %v\n", err)
			return
		}
		fmt.Printf("%s\n", hex.EncodeToString(frame))
	},
}

// encodeMapping parses a YAML mapping and encodes it in the given mode.
func encodeMapping(codec *codecs.NamedTupleCodec, mapping, mode string) ([]byte, error) {
	var value map[string]any
	if err := yaml.Unmarshal([]byte(mapping), &value); err != nil {
		return nil, fmt.Errorf("failed to parse mapping: %w", err)
	}

	switch mode {
	case "value":
		w := buff.NewWriter()
		if err := codec.Encode(w, value); err != nil {
			return nil, err
		}
		return w.Unwrap(), nil
	case "args":
		return codec.EncodeArgs(value)
	default:
		return nil, fmt.Errorf("unknown mode %q (want value or args)", mode)
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVar(&encodeMode, "mode", "value", "Encode mode: value or args")
}
