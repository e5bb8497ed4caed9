package event

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlTemplateFile is the top-level YAML structure for template files.
type yamlTemplateFile struct {
	Templates []yamlTemplate `yaml:"templates"`
}

// yamlTemplate is the YAML representation of one template.
type yamlTemplate struct {
	Category    string `yaml:"category"`
	Type        string `yaml:"type"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// LoadTemplatesFromFile reads and validates a template YAML file.
//
// Precondition: path must point to a valid YAML template file.
// Postcondition: Returns a validated TemplateSet or a non-nil error.
func LoadTemplatesFromFile(path string) (TemplateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file %s: %w", path, err)
	}
	return LoadTemplatesFromBytes(data)
}

// LoadTemplatesFromBytes parses and validates templates from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the template schema.
// Postcondition: Returns a validated TemplateSet or a non-nil error.
func LoadTemplatesFromBytes(data []byte) (TemplateSet, error) {
	var file yamlTemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}

	set := make(TemplateSet)
	for i, tpl := range file.Templates {
		category, err := parseCategory(tpl.Category)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		eventType, err := parseType(tpl.Type)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		set[category] = append(set[category], Template{
			Type:        eventType,
			Title:       tpl.Title,
			Description: tpl.Description,
		})
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("validating templates: %w", err)
	}
	return set, nil
}

func parseCategory(name string) (Category, error) {
	switch name {
	case "critical_failure":
		return CriticalFailure, nil
	case "failure":
		return Failure, nil
	case "neutral":
		return Neutral, nil
	case "success":
		return Success, nil
	case "great_success":
		return GreatSuccess, nil
	case "critical_success":
		return CriticalSuccess, nil
	default:
		return 0, fmt.Errorf("unknown event category %q", name)
	}
}

func parseType(name string) (Type, error) {
	switch name {
	case "resource_discovery":
		return ResourceDiscovery, nil
	case "combat":
		return Combat, nil
	case "trade":
		return Trade, nil
	case "hazard":
		return Hazard, nil
	case "mystery":
		return Mystery, nil
	case "malfunction":
		return Malfunction, nil
	case "boon":
		return Boon, nil
	case "narrative":
		return Narrative, nil
	case "base_event":
		return BaseEvent, nil
	default:
		return 0, fmt.Errorf("unknown event type %q", name)
	}
}
