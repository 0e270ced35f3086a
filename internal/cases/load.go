package cases

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/rafaelqm/dsdetective/internal/i18n"
)

//go:embed data
var dataFS embed.FS

// localeDirs maps locales to their directory under data/.
var localeDirs = map[i18n.Locale]string{
	i18n.LocaleEN:   "en",
	i18n.LocalePTBR: "pt-BR",
}

func init() {
	cats, err := loadCatalogs()
	if err != nil {
		panic(fmt.Sprintf("cases: embedded catalog is invalid: %v", err))
	}
	catalogs = cats
}

// loadCatalogs reads, schema-validates, and structurally validates every
// locale's embedded documents.
func loadCatalogs() (map[i18n.Locale]*catalog, error) {
	caseCheck, err := compileSchema("case", caseSchema)
	if err != nil {
		return nil, fmt.Errorf("compile case schema: %w", err)
	}
	conceptCheck, err := compileSchema("concepts", conceptSchema)
	if err != nil {
		return nil, fmt.Errorf("compile concept schema: %w", err)
	}

	cats := make(map[i18n.Locale]*catalog, len(localeDirs))
	byLocale := make(map[string][]Case, len(localeDirs))

	for locale, dir := range localeDirs {
		cs, err := loadCases(path.Join("data", dir), caseCheck)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		concepts, err := loadConcepts(path.Join("data", dir, "concepts.json"), conceptCheck)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		if err := validateCatalog(cs, concepts); err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		cats[locale] = buildCatalog(cs, concepts)
		byLocale[string(locale)] = cats[locale].cases
	}

	if err := validateParallel(byLocale); err != nil {
		return nil, err
	}
	return cats, nil
}

// loadCases decodes every case-*.json document in dir.
func loadCases(dir string, schema *jsonschema.Schema) ([]Case, error) {
	entries, err := dataFS.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "case-") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]Case, 0, len(names))
	for _, name := range names {
		raw, err := dataFS.ReadFile(path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("%s: invalid JSON: %w", name, err)
		}
		if err := schema.Validate(parsed); err != nil {
			return nil, fmt.Errorf("%s: schema validation failed: %w", name, err)
		}
		var c Case
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", name, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// loadConcepts decodes one locale's concepts.json.
func loadConcepts(file string, schema *jsonschema.Schema) ([]Concept, error) {
	raw, err := dataFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", file, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%s: schema validation failed: %w", file, err)
	}
	var out []Concept
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", file, err)
	}
	return out, nil
}

// compileSchema compiles an in-code schema definition. The jsonschema
// library expects a parsed JSON value, so the definition is marshaled and
// re-parsed first.
func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
