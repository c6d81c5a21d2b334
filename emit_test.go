package materialcolors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePalettes() []*Palette {
	red := NewPalette("Red")
	red.Put("Red_50", 0xFFFFEBEE)
	red.Put("Red_A100", 0xFFFF8A80)

	lightBlue := NewPalette("Light Blue")
	lightBlue.Put("Light_Blue_900", 0xFF01579B)

	return []*Palette{red, lightBlue}
}

func TestWriteResourceXML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := WriteResourceXML(buf, samplePalettes())
	assert.NoError(t, err)

	expected := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		"<resources>\n" +
		"    <!-- Red -->\n" +
		"    <color name=\"red_50\">#FFFFEBEE</color>\n" +
		"    <color name=\"red_a100\">#FFFF8A80</color>\n" +
		"    <!-- Light Blue -->\n" +
		"    <color name=\"light_blue_900\">#FF01579B</color>\n" +
		"\n</resources>"
	assert.Equal(t, expected, buf.String())
}

func TestWriteJavaClass(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := WriteJavaClass(buf, "MaterialColors", samplePalettes())
	assert.NoError(t, err)

	expected := "public class MaterialColors {\n\n" +
		"    /* Red */\n" +
		"    public static final int RED_50 = 0xFFFFEBEE;\n" +
		"    public static final int RED_A100 = 0xFFFF8A80;\n" +
		"    /* Light Blue */\n" +
		"    public static final int LIGHT_BLUE_900 = 0xFF01579B;\n" +
		"\n}"
	assert.Equal(t, expected, buf.String())
}

func TestWriteEmptyPalettes(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	assert.NoError(t, WriteResourceXML(buf, nil))
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<resources>\n\n</resources>", buf.String())

	buf.Reset()
	assert.NoError(t, WriteJavaClass(buf, "Colors", nil))
	assert.Equal(t, "public class Colors {\n\n\n}", buf.String())
}
