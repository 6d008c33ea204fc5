package site

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"lectern/internal/types"
)

// Section headings are taken from these levels; an H1 names the document
// itself and deeper levels stay body text.
const (
	minSectionLevel = 2
	maxSectionLevel = 3
)

// Load scans root for markdown files and builds the corpus registry. File
// order (lexical, directories mixed in) is display order.
func Load(root string) (*Registry, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("load docs: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("load docs: %s is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if strings.HasPrefix(name, ".") && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if strings.EqualFold(filepath.Ext(name), ".md") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load docs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("load docs: no markdown files under %s", root)
	}
	sort.Strings(paths)

	docs := make([]types.Document, 0, len(paths))
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load docs: %w", err)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil, fmt.Errorf("load docs: %w", err)
		}
		doc := parseDocument(routeFor(rel), p, src)
		docs = append(docs, doc)
	}
	return NewRegistry(docs), nil
}

// routeFor turns a relative file path into a route: slashes normalized,
// extension dropped. "guide/setup.md" -> "guide/setup".
func routeFor(rel string) string {
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, path.Ext(rel))
}

// parseDocument walks the markdown AST of one file and derives its title,
// section anchors and outgoing links.
func parseDocument(route, filePath string, src []byte) types.Document {
	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := types.Document{
		Route:    route,
		Path:     filePath,
		Markdown: string(src),
	}
	anchors := newAnchorSet()

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		label := strings.TrimSpace(string(heading.Text(src)))
		if label == "" {
			continue
		}
		if heading.Level == 1 && doc.Title == "" {
			doc.Title = label
			continue
		}
		if heading.Level < minSectionLevel || heading.Level > maxSectionLevel {
			continue
		}
		doc.Sections = append(doc.Sections, types.Section{
			Anchor: anchors.claim(label),
			Label:  label,
			Route:  route,
			Level:  heading.Level,
		})
	}
	if doc.Title == "" {
		doc.Title = titleFromRoute(route)
	}
	doc.Links = collectLinks(route, root, src)
	return doc
}

func collectLinks(route string, root ast.Node, src []byte) []types.Link {
	var links []types.Link
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		raw := strings.TrimSpace(string(link.Destination))
		if raw == "" {
			return ast.WalkContinue, nil
		}
		label := strings.TrimSpace(string(link.Text(src)))
		if label == "" {
			label = raw
		}
		links = append(links, resolveHref(route, label, raw))
		return ast.WalkContinue, nil
	})
	return links
}

func titleFromRoute(route string) string {
	base := path.Base(route)
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
