package materialcolors

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	fp "path/filepath"

	"github.com/pkg/errors"
)

const (
	// DefaultURL is the Material Design color style guide.
	DefaultURL = "http://www.google.com/design/spec/style/color.html"

	DefaultOutputDir    = "colors"
	DefaultXMLFileName  = "material_colors.xml"
	DefaultJavaFileName = "MaterialColors.java"
)

var (
	defaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:73.0) Gecko/20100101 Firefox/73.0"
)

// Generator downloads the color style guide and generates the color
// resource file and the Java constants class from it.
type Generator struct {
	URL          string
	OutputDir    string
	XMLFileName  string
	JavaFileName string

	UserAgent string
	EnableLog bool

	// Stdout receives a copy of every generated file.
	Stdout    io.Writer
	Transport http.RoundTripper

	isValidated bool
	httpClient  *http.Client
}

// Validate prepares Generator to make sure its configurations
// are valid and ready to use. Must be run at least once before
// generation started.
func (g *Generator) Validate() {
	if g.URL == "" {
		g.URL = DefaultURL
	}

	if g.OutputDir == "" {
		g.OutputDir = DefaultOutputDir
	}

	if g.XMLFileName == "" {
		g.XMLFileName = DefaultXMLFileName
	}

	if g.JavaFileName == "" {
		g.JavaFileName = DefaultJavaFileName
	}

	if g.UserAgent == "" {
		g.UserAgent = defaultUserAgent
	}

	if g.Stdout == nil {
		g.Stdout = os.Stdout
	}

	if g.Transport == nil {
		g.Transport = http.DefaultTransport
	}

	g.httpClient = newHTTPClient(g.Transport)
	g.isValidated = true
}

// Generate runs the whole pipeline: fetch the page, extract its palettes,
// write both artifacts and check that they agree with each other.
func (g *Generator) Generate(ctx context.Context) error {
	// Make sure generator has been validated
	if !g.isValidated {
		return errors.Wrap(ErrIllegalState, "generator hasn't been validated")
	}

	if !isValidURL(g.URL) {
		return errors.Wrapf(ErrNetwork, "url %q is not valid", g.URL)
	}

	g.logf("fetching %s\n", g.URL)
	doc, err := g.fetch(ctx)
	if err != nil {
		return err
	}

	palettes, err := ExtractPalettes(doc)
	if err != nil {
		return err
	}
	g.logf("found %d palettes\n", len(palettes))

	xmlContent := bytes.NewBuffer(nil)
	if err = WriteResourceXML(xmlContent, palettes); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	javaContent := bytes.NewBuffer(nil)
	if err = WriteJavaClass(javaContent, className(g.JavaFileName), palettes); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = g.writeArtifact(g.XMLFileName, xmlContent.Bytes()); err != nil {
		return err
	}

	if err = g.writeArtifact(g.JavaFileName, javaContent.Bytes()); err != nil {
		return err
	}

	return g.verify(palettes)
}

// writeArtifact saves content into the output directory and echoes it
// to Stdout.
func (g *Generator) writeArtifact(fileName string, content []byte) error {
	// Make sure output dir exists
	if err := os.MkdirAll(g.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	path := fp.Join(g.OutputDir, fileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if _, err := fmt.Fprintln(g.Stdout, string(content)); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	g.logf("saved %s\n", path)
	return nil
}

// verify reads both artifacts back from disk and compares them
// against the extracted palettes.
func (g *Generator) verify(palettes []*Palette) error {
	xmlFile, err := os.Open(fp.Join(g.OutputDir, g.XMLFileName))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer xmlFile.Close()

	javaFile, err := os.Open(fp.Join(g.OutputDir, g.JavaFileName))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer javaFile.Close()

	resourceColors, err := ReadResourceColors(xmlFile)
	if err != nil {
		return err
	}

	javaColors, err := ReadJavaConstants(javaFile)
	if err != nil {
		return err
	}

	return VerifyArtifacts(palettes, resourceColors, javaColors)
}
