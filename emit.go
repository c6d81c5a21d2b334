package materialcolors

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// WriteResourceXML writes palettes as an Android color resource file.
func WriteResourceXML(w io.Writer, palettes []*Palette) error {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	buf.WriteString("<resources>\n")
	for _, palette := range palettes {
		fmt.Fprintf(buf, "    <!-- %s -->\n", palette.Name)
		for _, color := range palette.Colors() {
			fmt.Fprintf(buf, "    <color name=\"%s\">%s</color>\n",
				strings.ToLower(color.Name), color.Value.Hex())
		}
	}
	buf.WriteString("\n</resources>")

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteJavaClass writes palettes as integer constants of a Java class.
func WriteJavaClass(w io.Writer, className string, palettes []*Palette) error {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "public class %s {\n\n", className)
	for _, palette := range palettes {
		fmt.Fprintf(buf, "    /* %s */\n", palette.Name)
		for _, color := range palette.Colors() {
			fmt.Fprintf(buf, "    public static final int %s = %s;\n",
				strings.ToUpper(color.Name), color.Value.Literal())
		}
	}
	buf.WriteString("\n}")

	_, err := w.Write(buf.Bytes())
	return err
}
