package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vanirdb/vanir-go/pkg/buff"
	"github.com/vanirdb/vanir-go/pkg/codecs"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <hex-frame>",
	Short: "Decode a wire frame against the schema",
	Long: `Decode a hex-encoded named tuple wire frame and print the keyed
result as YAML.

Example:
  vanirwire decode --schema point.yaml 0000001c00000002...`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := decodeFrame(loadedCodec, args[0])
		if err != nil {
			fmt.Printf("Error decoding: %v\n", err)
			return
		}
		fmt.Print(out)
	},
}

// decodeFrame decodes a hex frame, peeling the outer length prefix the way
// the driver's message parser would, and renders the result as YAML.
func decodeFrame(codec *codecs.NamedTupleCodec, hexFrame string) (string, error) {
	frame, err := hex.DecodeString(strings.TrimSpace(hexFrame))
	if err != nil {
		return "", fmt.Errorf("failed to parse hex frame: %w", err)
	}

	r := buff.NewReader(frame)
	length, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	if int(length) != r.Remaining() {
		return "", fmt.Errorf("frame length %d disagrees with %d payload bytes", length, r.Remaining())
	}

	var payload buff.Reader
	if err := r.SliceInto(&payload, int(length)); err != nil {
		return "", err
	}
	value, err := codec.Decode(&payload)
	if err != nil {
		return "", err
	}
	if err := payload.Finish(); err != nil {
		return "", err
	}

	out, err := yaml.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to render result: %w", err)
	}
	return string(out), nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
