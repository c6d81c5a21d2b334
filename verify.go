package materialcolors

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

var (
	rxJavaConstant = regexp.MustCompile(`(?m)^\s*public static final int (\w+) = 0x([0-9A-Fa-f]{8});`)
)

// ReadResourceColors reads back the <color> entries of a resource file
// in the order they appear.
func ReadResourceColors(input io.Reader) ([]Color, error) {
	var colors []Color
	var name string
	inColor := false

	lexer := xml.NewLexer(parse.NewInput(input))
	for {
		token, data := lexer.Next()

		switch token {
		case xml.ErrorToken:
			if err := lexer.Err(); err != io.EOF {
				return nil, errors.Wrapf(ErrParse, "failed to read resource: %v", err)
			}
			return colors, nil

		case xml.StartTagToken:
			inColor = string(lexer.Text()) == "color"
			name = ""

		case xml.AttributeToken:
			if inColor && string(lexer.Text()) == "name" {
				name = strings.Trim(string(lexer.AttrVal()), `"'`)
			}

		case xml.TextToken:
			if !inColor {
				continue
			}

			value, err := ParseColor(strings.TrimSpace(string(data)))
			if err != nil {
				return nil, err
			}

			colors = append(colors, Color{Name: name, Value: value})
			inColor = false

		case xml.EndTagToken:
			inColor = false
		}
	}
}

// ReadJavaConstants reads back the integer constants of a generated class
// in the order they appear.
func ReadJavaConstants(input io.Reader) ([]Color, error) {
	content, err := io.ReadAll(input)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "failed to read class: %v", err)
	}

	var colors []Color
	for _, parts := range rxJavaConstant.FindAllSubmatch(content, -1) {
		value, err := strconv.ParseUint(string(parts[2]), 16, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidFormat, "constant %s: %v", parts[1], err)
		}

		colors = append(colors, Color{Name: string(parts[1]), Value: ARGB(value)})
	}

	return colors, nil
}

// VerifyArtifacts checks that both artifacts hold exactly the colors of
// palettes, in the same order and with the same values.
func VerifyArtifacts(palettes []*Palette, resourceColors, javaColors []Color) error {
	var expected []Color
	for _, palette := range palettes {
		expected = append(expected, palette.Colors()...)
	}

	if len(resourceColors) != len(expected) || len(javaColors) != len(expected) {
		return errors.Wrapf(ErrMismatch, "expected %d colors, resource has %d and class has %d",
			len(expected), len(resourceColors), len(javaColors))
	}

	for i, color := range expected {
		res, java := resourceColors[i], javaColors[i]

		switch {
		case res.Name != strings.ToLower(color.Name):
			return errors.Wrapf(ErrMismatch, "resource color #%d is %q, expected %q", i, res.Name, strings.ToLower(color.Name))
		case java.Name != strings.ToUpper(color.Name):
			return errors.Wrapf(ErrMismatch, "class constant #%d is %q, expected %q", i, java.Name, strings.ToUpper(color.Name))
		case res.Value != color.Value || java.Value != color.Value:
			return errors.Wrapf(ErrMismatch, "%s is %s in resource and %s in class, expected %s",
				color.Name, res.Value.Hex(), java.Value.Literal(), color.Value.Hex())
		}
	}

	return nil
}
