package steps

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/custodia-labs/textpipe/internal/adapters/driven/markup"
	"github.com/custodia-labs/textpipe/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe/internal/normalisers/html"
	"github.com/custodia-labs/textpipe/internal/normalisers/markdown"
	"github.com/custodia-labs/textpipe/internal/normalisers/plaintext"
)

// Built-in step names.
const (
	HTMLToText     = "html2txt"
	HTMLToMarkdown = "html2md"
	MarkdownToText = "md2txt"
	Clean          = "clean"
	Copy           = "copy"
)

// CleanTextKey enables paragraph cleaning in html2txt, in builder config
// or in a run's Extra fields.
const CleanTextKey = "clean_text"

// RegisterDefaults registers all built-in steps with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(HTMLToText, buildHTMLToText)
	r.Register(HTMLToMarkdown, buildHTMLToMarkdown)
	r.Register(MarkdownToText, buildMarkdownToText)
	r.Register(Clean, buildClean)
	r.Register(Copy, buildCopy)
}

// buildHTMLToText creates the html2txt step.
// Supported config keys:
//   - clean_text (bool): clean each paragraph before writing (default: false)
func buildHTMLToText(cfg map[string]any) (driving.StepFunc, error) {
	conv := &paragraphConverter{
		source: html.New(markup.New()),
		ext:    "txt",
		clean:  getBoolFromConfig(cfg, CleanTextKey),
	}
	return conv.Run, nil
}

// buildHTMLToMarkdown creates the html2md step. It takes no config.
func buildHTMLToMarkdown(_ map[string]any) (driving.StepFunc, error) {
	conv := &contentConverter{ext: "md", convert: func(s string) (string, error) {
		return htmltomarkdown.ConvertString(s)
	}}
	return conv.Run, nil
}

// buildMarkdownToText creates the md2txt step. It honours clean_text like
// html2txt.
func buildMarkdownToText(cfg map[string]any) (driving.StepFunc, error) {
	conv := &paragraphConverter{
		source: markdown.New(),
		ext:    "txt",
		clean:  getBoolFromConfig(cfg, CleanTextKey),
	}
	return conv.Run, nil
}

// buildClean creates the clean step, which always cleans.
func buildClean(_ map[string]any) (driving.StepFunc, error) {
	conv := &paragraphConverter{source: plaintext.New(), clean: true}
	return conv.Run, nil
}

// buildCopy creates the copy step. It takes no config.
func buildCopy(_ map[string]any) (driving.StepFunc, error) {
	conv := &contentConverter{convert: func(s string) (string, error) { return s, nil }}
	return conv.Run, nil
}

// getBoolFromConfig safely extracts a bool from a generic config map.
// Handles bool and the "true"/"false" strings that come from flags.
func getBoolFromConfig(cfg map[string]any, key string) bool {
	val, ok := cfg[key]
	if !ok {
		return false
	}

	switch v := val.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1" || v == "yes"
	default:
		return false
	}
}
