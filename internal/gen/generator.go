package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"enum-bridge/bidi"
	"enum-bridge/internal/analyze"
	"enum-bridge/internal/common"
	"enum-bridge/internal/mapping"
)

// BidiPath is the import path of the converter runtime.
const BidiPath = "enum-bridge/bidi"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package. A declaration
	// file's own package setting takes precedence.
	PackageName string
	// PackagePath is the import path of the generated package. Enumerations
	// declared in it are referenced without a qualifier.
	PackagePath string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "bridges",
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator generates Go code from validated declarations.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config, logger: zap.NewNop()}
}

// WithLogger sets the logger used to report progress.
func (g *Generator) WithLogger(logger *zap.Logger) *Generator {
	if logger != nil {
		g.logger = logger
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "orders_bridge.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Input is one validated declaration file.
type Input struct {
	// Source is the path of the declaration file, used for the file name
	// and the generated header.
	Source string
	File   *mapping.MappingFile
	// Compiled are the converters that passed mapping.Compile.
	Compiled []mapping.Compiled
	// Graph supplies package names for imports; may be nil.
	Graph *analyze.EnumGraph
}

// Generate generates one Go file for the declaration.
func (g *Generator) Generate(in Input) (*GeneratedFile, error) {
	if len(in.Compiled) == 0 {
		return nil, fmt.Errorf("%s: no converters to generate", in.Source)
	}

	data, err := g.buildTemplateData(in)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := bridgeTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			if werr := writeUnformatted(g.config.OutputDir, data.Filename, buf.Bytes(), err); werr != nil {
				g.logger.Warn("saving unformatted output failed", zap.Error(werr))
			}
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	g.logger.Info("generated bridge",
		zap.String("file", data.Filename),
		zap.Int("converters", len(data.Converters)))

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the bridge template.
type templateData struct {
	Source           string
	PackageName      string
	Filename         string
	Imports          []importSpec
	Tags             []string
	Converters       []converterData
	GenerateComments bool
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

type converterData struct {
	Name     string
	Tag      string // Go expression of the tag type
	Internal domainData
	External domainData
	Rules    []string // Go expressions
}

type domainData struct {
	Label   string
	GoType  string
	Members []string // Go expressions
}

func (g *Generator) buildTemplateData(in Input) (*templateData, error) {
	pkgName := g.config.PackageName
	if in.File != nil && in.File.Package != "" {
		pkgName = in.File.Package
	}

	data := &templateData{
		Source:           filepath.Base(in.Source),
		PackageName:      pkgName,
		Filename:         filename(in.Source),
		GenerateComments: g.config.GenerateComments,
	}

	imports := newImportSet(g.config.PackagePath, in.Graph)
	imports.add(BidiPath)

	for _, c := range in.Compiled {
		for _, s := range []mapping.Side{c.Internal, c.External} {
			if s.Enum != nil {
				imports.add(s.Enum.ID.PkgPath)
			}
		}
	}

	data.Imports = imports.specs()

	for _, c := range in.Compiled {
		g.logger.Debug("generating converter",
			zap.String("converter", c.Def.Name),
			zap.String("internal", c.Internal.GoType()),
			zap.String("external", c.External.GoType()),
			zap.Int("rules", len(c.Rules)))

		conv, err := converterOf(c, imports)
		if err != nil {
			return nil, fmt.Errorf("converter %s: %w", c.Def.Name, err)
		}

		data.Converters = append(data.Converters, conv)

		if c.Def.Tag != "" && !slices.Contains(data.Tags, c.Def.Tag) {
			data.Tags = append(data.Tags, c.Def.Tag)
		}
	}

	slices.Sort(data.Tags)

	for _, tag := range data.Tags {
		for _, c := range data.Converters {
			if c.Name == tag {
				return nil, fmt.Errorf("tag %s collides with the converter of the same name", tag)
			}
		}
	}

	return data, nil
}

func converterOf(c mapping.Compiled, imports *importSet) (converterData, error) {
	conv := converterData{
		Name:     c.Def.Name,
		Tag:      "bidi.Untagged",
		Internal: domainOf(c.Internal, imports),
		External: domainOf(c.External, imports),
	}

	if c.Def.Tag != "" {
		conv.Tag = c.Def.Tag
	}

	a := func(name string) string { return memberExpr(c.Internal, name, imports) }
	b := func(name string) string { return memberExpr(c.External, name, imports) }

	for _, r := range c.Rules {
		var expr string

		switch r.Kind {
		case bidi.KindEquivalence:
			expr = fmt.Sprintf("bidi.Equiv(%s, %s)", a(r.ValueA), b(r.ValueB))
		case bidi.KindProjectionAtoB:
			expr = fmt.Sprintf("bidi.ProjectAtoB(%s, %s)", a(r.ValueA), b(r.ValueB))
		case bidi.KindProjectionBtoA:
			expr = fmt.Sprintf("bidi.ProjectBtoA(%s, %s)", a(r.ValueA), b(r.ValueB))
		case bidi.KindOrphanA:
			expr = fmt.Sprintf("bidi.OrphanA[%s](%s)", conv.External.GoType, a(r.ValueA))
		case bidi.KindOrphanB:
			expr = fmt.Sprintf("bidi.OrphanB[%s](%s)", conv.Internal.GoType, b(r.ValueB))
		default:
			return converterData{}, fmt.Errorf("rule %v has an invalid kind", r)
		}

		conv.Rules = append(conv.Rules, expr)
	}

	return conv, nil
}

func domainOf(s mapping.Side, imports *importSet) domainData {
	d := domainData{Label: s.Ref.Label(), GoType: "string"}

	if s.Enum != nil {
		d.GoType = imports.qualify(s.Enum.ID.PkgPath, s.Enum.ID.Name)
	}

	for _, m := range s.Members {
		d.Members = append(d.Members, memberExpr(s, m, imports))
	}

	return d
}

// memberExpr is a Go constant reference for enum members and a string
// literal for inline members.
func memberExpr(s mapping.Side, name string, imports *importSet) string {
	if s.Enum == nil {
		return strconv.Quote(name)
	}

	return imports.qualify(s.Enum.ID.PkgPath, name)
}

// filename derives "<base>_bridge.go" from the declaration file path.
func filename(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if base == "" || base == "." {
		base = "enum"
	}

	return strings.ReplaceAll(base, "-", "_") + "_bridge.go"
}

// importSet assigns unique package aliases in a deterministic way.
type importSet struct {
	self    string
	graph   *analyze.EnumGraph
	aliases map[string]string // path -> alias
	taken   map[string]string // alias -> path
	order   []string
}

func newImportSet(self string, graph *analyze.EnumGraph) *importSet {
	return &importSet{
		self:    self,
		graph:   graph,
		aliases: map[string]string{},
		taken:   map[string]string{},
	}
}

func (s *importSet) add(path string) {
	if path == "" || path == s.self {
		return
	}

	if _, ok := s.aliases[path]; ok {
		return
	}

	name := s.packageName(path)

	alias := name
	for i := 2; s.taken[alias] != ""; i++ {
		alias = name + strconv.Itoa(i)
	}

	s.aliases[path] = alias
	s.taken[alias] = path
	s.order = append(s.order, path)
}

func (s *importSet) packageName(path string) string {
	if s.graph != nil {
		if pkg, ok := s.graph.Packages[path]; ok && pkg.Name != "" {
			return pkg.Name
		}
	}

	return common.PkgAlias(path)
}

// qualify returns name qualified by the alias of path.
func (s *importSet) qualify(path, name string) string {
	alias, ok := s.aliases[path]
	if !ok {
		return name
	}

	return alias + "." + name
}

// specs returns the imports sorted by path; aliases are only spelled out
// when they differ from the last path element.
func (s *importSet) specs() []importSpec {
	paths := slices.Clone(s.order)
	slices.Sort(paths)

	specs := make([]importSpec, 0, len(paths))
	for _, p := range paths {
		spec := importSpec{Path: p}
		if alias := s.aliases[p]; alias != common.PkgAlias(p) {
			spec.Alias = alias
		}

		specs = append(specs, spec)
	}

	return specs
}
