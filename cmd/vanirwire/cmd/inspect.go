package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanirdb/vanir-go/pkg/codecs"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the compiled codec for the schema",
	Long: `Show the compiled named tuple codec: type id, arity and the kind
and type of every field.

Example:
  vanirwire inspect --schema point.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(inspectCodec(loadedCodec, 0))
	},
}

// inspectCodec renders a codec tree, indenting nested named tuples.
func inspectCodec(codec *codecs.NamedTupleCodec, depth int) string {
	indent := strings.Repeat("  ", depth)
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s (kind=%s, id=%s, arity=%d)\n",
		indent, codec.TypeName(), codec.Kind(), codec.TypeID(), len(codec.Names()))

	names := codec.Names()
	for i, sub := range codec.SubCodecs() {
		if nested, ok := sub.(*codecs.NamedTupleCodec); ok {
			fmt.Fprintf(&b, "%s  %s:\n", indent, names[i])
			b.WriteString(inspectCodec(nested, depth+2))
			continue
		}
		fmt.Fprintf(&b, "%s  %s: %s (kind=%s)\n", indent, names[i], sub.TypeName(), sub.Kind())
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
