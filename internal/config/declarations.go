package config

import "google.golang.org/genai"

// FunctionDeclarations builds the model-facing declaration for every
// configured tool. A tool without parameters is declared schema-less; one
// with parameters gets an object schema whose properties are all declared as
// strings, with the required list containing exactly the parameters marked
// required. The schema mirrors the registry's accepted argument shape so the
// model never requests a call the registry cannot execute.
func (c *Config) FunctionDeclarations() []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(c.Tools))

	for _, tool := range c.Tools {
		decl := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
		}

		if len(tool.Parameters) > 0 {
			properties := make(map[string]*genai.Schema, len(tool.Parameters))
			var required []string

			for _, param := range tool.Parameters {
				properties[param.Name] = &genai.Schema{
					Type:        genai.TypeString,
					Description: param.Description,
				}
				if param.Required {
					required = append(required, param.Name)
				}
			}

			decl.Parameters = &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   required,
			}
		}

		decls = append(decls, decl)
	}

	return decls
}
