package sitecontent

// SectionDefinition describes one entry of the admin navigation rail and the
// JSON schema its payloads must satisfy.
type SectionDefinition struct {
	ID             SectionID         `json:"id" yaml:"id"`
	Label          string            `json:"label" yaml:"label"`
	LabelLocalized map[string]string `json:"label_localized,omitempty" yaml:"label_localized,omitempty"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	Icon           string            `json:"icon,omitempty" yaml:"icon,omitempty"`
	Schema         map[string]any    `json:"schema,omitempty" yaml:"schema,omitempty"`
}

var defaultSectionDefinitions = []SectionDefinition{
	{
		ID:             SectionHero,
		Label:          "Hero",
		LabelLocalized: map[string]string{"es": "Portada"},
		Description:    "Landing banner and calls to action",
		Icon:           "home",
		Schema: objectSchema(map[string]any{
			"title":           stringSchema(),
			"subtitle":        stringSchema(),
			"description":     stringSchema(),
			"backgroundImage": stringSchema(),
			"primaryButton":   buttonSchema(),
			"secondaryButton": buttonSchema(),
		}, "title", "subtitle", "description", "primaryButton", "secondaryButton"),
	},
	{
		ID:             SectionThreeRoads,
		Label:          "Three Roads",
		LabelLocalized: map[string]string{"es": "Tres caminos"},
		Description:    "The three options framing",
		Icon:           "git-fork",
		Schema: objectSchema(map[string]any{
			"title":        stringSchema(),
			"description1": stringSchema(),
			"description2": stringSchema(),
			"conclusion":   stringSchema(),
			"roads": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": objectSchema(map[string]any{
					"name":        stringSchema(),
					"description": stringSchema(),
				}, "name", "description"),
			},
		}, "title", "roads"),
	},
	{
		ID:             SectionServices,
		Label:          "Services",
		LabelLocalized: map[string]string{"es": "Servicios"},
		Description:    "Service pillars",
		Icon:           "briefcase",
		Schema: objectSchema(map[string]any{
			"title":           stringSchema(),
			"backgroundImage": stringSchema(),
			"pillars": arraySchema(objectSchema(map[string]any{
				"id":          idSchema(),
				"title":       stringSchema(),
				"subtitle":    stringSchema(),
				"icon":        stringSchema(),
				"customImage": stringSchema(),
				"points":      arraySchema(stringSchema()),
				"link":        stringSchema(),
			}, "id", "title")),
		}, "title", "pillars"),
	},
	{
		ID:             SectionHowWeWork,
		Label:          "How We Work",
		LabelLocalized: map[string]string{"es": "Cómo trabajamos"},
		Description:    "Engagement steps",
		Icon:           "list-ordered",
		Schema: objectSchema(map[string]any{
			"title":           stringSchema(),
			"backgroundImage": stringSchema(),
			"steps": arraySchema(objectSchema(map[string]any{
				"number":      stringSchema(),
				"title":       stringSchema(),
				"description": stringSchema(),
				"image":       stringSchema(),
			}, "number", "title")),
		}, "title", "steps"),
	},
	{
		ID:             SectionForTeams,
		Label:          "For Teams",
		LabelLocalized: map[string]string{"es": "Para equipos"},
		Description:    "Team audiences",
		Icon:           "users",
		Schema: objectSchema(map[string]any{
			"title":           stringSchema(),
			"intro":           stringSchema(),
			"audiences":       arraySchema(stringSchema()),
			"conclusion":      stringSchema(),
			"buttonText":      stringSchema(),
			"backgroundImage": stringSchema(),
		}, "title", "audiences"),
	},
	{
		ID:             SectionInsights,
		Label:          "Insights",
		LabelLocalized: map[string]string{"es": "Artículos"},
		Description:    "Posts and articles",
		Icon:           "file-text",
		Schema: objectSchema(map[string]any{
			"title":           stringSchema(),
			"subtitle":        stringSchema(),
			"backgroundImage": stringSchema(),
			"posts": arraySchema(objectSchema(map[string]any{
				"id":               idSchema(),
				"title":            stringSchema(),
				"summary":          stringSchema(),
				"category":         stringSchema(),
				"date":             stringSchema(),
				"slug":             stringSchema(),
				"readingTime":      stringSchema(),
				"featuredImage":    stringSchema(),
				"illustrationType": stringSchema(),
			}, "id", "title")),
		}, "title", "posts"),
	},
	{
		ID:             SectionTrainings,
		Label:          "Trainings",
		LabelLocalized: map[string]string{"es": "Formaciones"},
		Description:    "Training offerings",
		Icon:           "graduation-cap",
		Schema: objectSchema(map[string]any{
			"title":           stringSchema(),
			"backgroundImage": stringSchema(),
			"items": arraySchema(objectSchema(map[string]any{
				"title":   stringSchema(),
				"outcome": stringSchema(),
				"icon":    stringSchema(),
			}, "title")),
			"buttonText": stringSchema(),
		}, "title", "items"),
	},
	{
		ID:             SectionNewsletter,
		Label:          "Newsletter",
		LabelLocalized: map[string]string{"es": "Boletín"},
		Description:    "Signup block",
		Icon:           "mail",
		Schema: objectSchema(map[string]any{
			"title":           stringSchema(),
			"description":     stringSchema(),
			"placeholder":     stringSchema(),
			"buttonText":      stringSchema(),
			"backgroundImage": stringSchema(),
		}, "title"),
	},
	{
		ID:             SectionNavigation,
		Label:          "Navigation",
		LabelLocalized: map[string]string{"es": "Navegación"},
		Description:    "Top navigation links",
		Icon:           "menu",
		Schema: objectSchema(map[string]any{
			"links": arraySchema(objectSchema(map[string]any{
				"name": stringSchema(),
				"path": stringSchema(),
			}, "name", "path")),
		}, "links"),
	},
	{
		ID:             SectionSettings,
		Label:          "Site Settings",
		LabelLocalized: map[string]string{"es": "Ajustes del sitio"},
		Description:    "Identity and contact details",
		Icon:           "settings",
		Schema: objectSchema(map[string]any{
			"siteName":    stringSchema(),
			"tagline":     stringSchema(),
			"logo":        stringSchema(),
			"favicon":     stringSchema(),
			"email":       stringSchema(),
			"linkedinUrl": stringSchema(),
			"logoText":    stringSchema(),
		}, "siteName"),
	},
	{
		ID:             SectionColors,
		Label:          "Colors",
		LabelLocalized: map[string]string{"es": "Colores"},
		Description:    "Brand palette",
		Icon:           "palette",
		Schema: objectSchema(map[string]any{
			"cream":  stringSchema(),
			"dark":   stringSchema(),
			"accent": stringSchema(),
			"light":  stringSchema(),
		}, "cream", "dark", "accent", "light"),
	},
	{
		ID:             SectionImages,
		Label:          "Image Library",
		LabelLocalized: map[string]string{"es": "Biblioteca de imágenes"},
		Description:    "Uploaded media",
		Icon:           "image",
		Schema: objectSchema(map[string]any{
			"items": arraySchema(objectSchema(map[string]any{
				"id":         idSchema(),
				"url":        stringSchema(),
				"name":       stringSchema(),
				"alt":        stringSchema(),
				"uploadedAt": stringSchema(),
			}, "id", "url")),
		}, "items"),
	},
	{
		ID:             SectionUsers,
		Label:          "User Management",
		LabelLocalized: map[string]string{"es": "Usuarios"},
		Description:    "Admin accounts",
		Icon:           "user-cog",
		Schema: objectSchema(map[string]any{
			"users": arraySchema(objectSchema(map[string]any{
				"id":    idSchema(),
				"name":  stringSchema(),
				"email": stringSchema(),
				"role":  stringSchema(),
			}, "id")),
		}, "users"),
	},
}

// DefaultSectionDefinitions returns copies of the built-in section definitions
// in navigation order.
func DefaultSectionDefinitions() []SectionDefinition {
	out := make([]SectionDefinition, len(defaultSectionDefinitions))
	copy(out, defaultSectionDefinitions)
	return out
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// nil slices encode as null, so collections accept both.
func arraySchema(items map[string]any) map[string]any {
	return map[string]any{
		"type":  []string{"array", "null"},
		"items": items,
	}
}

func stringSchema() map[string]any {
	return map[string]any{"type": "string"}
}

func idSchema() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func buttonSchema() map[string]any {
	return objectSchema(map[string]any{
		"text": stringSchema(),
		"link": stringSchema(),
	}, "text", "link")
}
