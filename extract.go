package materialcolors

import (
	"strings"

	"github.com/go-shiori/dom"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

const (
	colorItemTag   = "li"
	colorItemClass = "color"
	headerClass    = "main-color"

	// Header text on the style guide reads like "Red 500 #f44336", so the
	// palette name is everything before the primary shade.
	headerShadeMarker = " 500 "
)

// extractor accumulates palettes while color items are visited in
// document order.
type extractor struct {
	palettes []*Palette
	current  *Palette
}

// ExtractPalettes walks the color list items of doc and groups each color
// row under the most recent palette header.
func ExtractPalettes(doc *html.Node) ([]*Palette, error) {
	ext := &extractor{}
	for _, item := range selectElements(doc, colorItemTag, colorItemClass) {
		var err error
		if hasClass(item, headerClass) {
			err = ext.startPalette(textOf(item))
		} else {
			err = ext.addRow(textOf(item))
		}

		if err != nil {
			return nil, err
		}
	}

	return ext.palettes, nil
}

func (ext *extractor) startPalette(text string) error {
	idx := strings.Index(text, headerShadeMarker)
	if idx < 0 {
		return errors.Wrapf(ErrParse, "palette header %q has no %q shade", text, strings.TrimSpace(headerShadeMarker))
	}

	ext.current = NewPalette(text[:idx])
	ext.palettes = append(ext.palettes, ext.current)
	return nil
}

func (ext *extractor) addRow(text string) error {
	if !strings.Contains(text, "#") {
		return nil
	}

	parts := strings.Split(text, "#")
	label := strings.TrimSpace(parts[0])
	hex := "#" + strings.TrimSpace(parts[1])

	// Black and white rows carry no shade label.
	switch strings.ToLower(label) {
	case "black", "white":
		return nil
	}

	if ext.current == nil {
		return errors.Wrapf(ErrIllegalState, "color row %q found before any palette header", text)
	}

	value, err := ParseColor(hex)
	if err != nil {
		return err
	}

	ext.current.Put(constantName(ext.current.Name, label), value)
	return nil
}

// selectElements returns elements with the specified tag name and class,
// in document order.
func selectElements(doc *html.Node, tagName string, className string) []*html.Node {
	var nodes []*html.Node
	for _, node := range dom.GetElementsByTagName(doc, tagName) {
		if hasClass(node, className) {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func hasClass(node *html.Node, className string) bool {
	for _, class := range strings.Fields(dom.ClassName(node)) {
		if class == className {
			return true
		}
	}
	return false
}
