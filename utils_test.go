package materialcolors

import (
	"testing"

	"github.com/go-shiori/dom"
	"github.com/stretchr/testify/assert"
)

func TestUtils(t *testing.T) {
	t.Run("isValidURL", func(t *testing.T) {
		assert.True(t, isValidURL("http://www.google.com/design/spec/style/color.html"))
		assert.False(t, isValidURL("itIsNotAURL"))
		assert.False(t, isValidURL("/design/spec/style/color.html"))
	})

	t.Run("textOf", func(t *testing.T) {
		doc := parseDocument(t, "<ul><li>\n\tRed\n  <span>500</span>  <b>#f44336</b> </li></ul>")
		li := dom.GetElementsByTagName(doc, "li")[0]
		assert.Equal(t, "Red 500 #f44336", textOf(li))

		doc = parseDocument(t, "<ul><li><div>Red</div><div>500</div><div>#f44336</div></li><li><span>50</span><span>#ffebee</span></li><li>A100<br>#ff8a80</li></ul>")
		items := dom.GetElementsByTagName(doc, "li")
		assert.Equal(t, "Red 500 #f44336", textOf(items[0]))
		assert.Equal(t, "50#ffebee", textOf(items[1]))
		assert.Equal(t, "A100 #ff8a80", textOf(items[2]))
	})

	t.Run("constantName", func(t *testing.T) {
		assert.Equal(t, "Red_500", constantName("Red", "500"))
		assert.Equal(t, "Light_Blue_A100", constantName("Light Blue", "A100"))
		assert.Equal(t, "Blue_Grey_50", constantName("Blue Grey", "50"))
		assert.Equal(t, constantName("Red", "A100"), constantName("Red", "Á100"))
	})

	t.Run("className", func(t *testing.T) {
		assert.Equal(t, "MaterialColors", className("MaterialColors.java"))
		assert.Equal(t, "MaterialColors", className("colors/MaterialColors.java"))
		assert.Equal(t, "Colors", className("Colors"))
	})

	t.Run("isMarkupContentType", func(t *testing.T) {
		assert.True(t, isMarkupContentType(""))
		assert.True(t, isMarkupContentType("text/html; charset=utf-8"))
		assert.True(t, isMarkupContentType("text/plain"))
		assert.True(t, isMarkupContentType("application/xml"))
		assert.True(t, isMarkupContentType("application/xhtml+xml"))
		assert.False(t, isMarkupContentType("image/png"))
		assert.False(t, isMarkupContentType("application/json"))
	})
}
