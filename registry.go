package main

import (
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
)

// defaultVersion is used when the source carries no version field.
const defaultVersion = "2.1"

// registry maps declaration names to their decoded records. Values are
// *BuildType, *Project or *VcsRoot depending on the declared kind.
type registry map[string]any

type declaration struct {
	name string
	kind string
	body string
}

// scanDeclarations walks the source for `object <Name> : <Kind>({` headers
// and extracts each declaration's balanced body. A declaration whose body is
// unterminated is skipped entirely.
func scanDeclarations(text string) []declaration {
	var decls []declaration
	for from := 0; ; {
		i := findWord(text, "object", from)
		if i < 0 {
			return decls
		}
		from = i + len("object")
		j := skipSpace(text, from)
		name, k := ident(text, j)
		if name == "" {
			continue
		}
		k = skipSpace(text, k)
		if k >= len(text) || text[k] != ':' {
			continue
		}
		kind, k2 := ident(text, skipSpace(text, k+1))
		if kind == "" || !strings.HasPrefix(text[k2:], "({") {
			continue
		}
		body := extractBalanced(text, k2+1)
		if body == "" {
			continue
		}
		decls = append(decls, declaration{name, kind, body[1 : len(body)-1]})
		from = k2 + 2
	}
}

// buildRegistry decodes every recognized declaration in the source. Template
// declarations share the build-type decoder. Duplicate names: the last
// declaration wins, silently.
func buildRegistry(text string) registry {
	reg := make(registry)
	for _, d := range scanDeclarations(text) {
		switch d.kind {
		case "BuildType", "Template":
			reg[d.name] = parseBuildType(d.body)
		case "Project":
			reg[d.name] = parseProject(d.body)
		case "GitVcsRoot":
			reg[d.name] = parseVcsRoot(d.body)
		}
	}
	return reg
}

// assemble merges registered records into the project's refs in place. A ref
// whose id has no registered record of the matching kind stays a bare
// `{id}` record. seen holds the sub-project ids on the current expansion
// path and stops reference cycles from recursing forever.
func assemble(p *Project, reg registry, seen map[string]bool) {
	for i, ref := range p.BuildTypes {
		if rec, ok := reg[ref.ID].(*BuildType); ok {
			merged := *rec
			merged.ID = ref.ID
			p.BuildTypes[i] = &merged
		}
	}
	for i, ref := range p.SubProjects {
		rec, ok := reg[ref.ID].(*Project)
		if !ok || seen[ref.ID] {
			continue
		}
		merged := *rec
		merged.ID = ref.ID
		// Fresh ref slices so the recursion never mutates the registry's
		// own record.
		merged.BuildTypes = append([]*BuildType(nil), rec.BuildTypes...)
		merged.SubProjects = append([]*Project(nil), rec.SubProjects...)
		merged.VcsRoots = append([]*VcsRoot(nil), rec.VcsRoots...)
		seen[ref.ID] = true
		assemble(&merged, reg, seen)
		delete(seen, ref.ID)
		p.SubProjects[i] = &merged
	}
	for i, ref := range p.VcsRoots {
		if rec, ok := reg[ref.ID].(*VcsRoot); ok {
			merged := *rec
			merged.ID = ref.ID
			p.VcsRoots[i] = &merged
		}
	}
}

// Parse decodes a whole settings source into the output document. The only
// failure is a missing or unterminated root project block; every other
// malformed construct degrades to an absent field.
func Parse(content string) (*Document, error) {
	version, ok := stringField(content, "version")
	if !ok {
		version = defaultVersion
	}

	body, ok := findBlock(content, "project")
	if !ok {
		return nil, orpheus.NotFoundError("project", "no project block found in settings source")
	}

	doc := &Document{Version: version, Project: parseProject(body)}
	assemble(doc.Project, buildRegistry(content), map[string]bool{})
	return doc, nil
}
