package validation

// Structural schemas for the two wire formats. They check shape only: node
// discriminators, required fields and value types.

var (
	documentSchema = &lazySchema{build: func() map[string]any {
		return withDefs(ref("richBlock"))
	}}
	layoutSchema = &lazySchema{build: func() map[string]any {
		return withDefs(ref("layoutBlock"))
	}}
	layoutsSchema = &lazySchema{build: func() map[string]any {
		return withDefs(map[string]any{
			"anyOf": []any{
				arrayOf(ref("layoutBlock")),
				map[string]any{
					"type":       "object",
					"required":   []any{"blocks"},
					"properties": map[string]any{"blocks": arrayOf(ref("layoutBlock"))},
				},
				ref("layoutBlock"),
			},
		})
	}}
)

func withDefs(root map[string]any) map[string]any {
	root["$defs"] = definitions()
	return root
}

func definitions() map[string]any {
	return map[string]any{
		"style": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"bold":   map[string]any{"type": "boolean"},
				"italic": map[string]any{"type": "boolean"},
				"strike": map[string]any{"type": "boolean"},
				"code":   map[string]any{"type": "boolean"},
			},
		},
		"inline": typed(
			map[string]any{"type": "string", "minLength": 1},
			map[string]any{"style": ref("style")},
			whenType("text", requiredStrings("text")),
			whenType("link", requiredStrings("url")),
			whenType("user", requiredStrings("user_id")),
			whenType("channel", requiredStrings("channel_id")),
			whenType("emoji", requiredStrings("name")),
			whenType("broadcast", map[string]any{
				"required":   []any{"range"},
				"properties": map[string]any{"range": enum("here", "channel", "everyone")},
			}),
		),
		"richSection": map[string]any{
			"type":     "object",
			"required": []any{"type"},
			"properties": map[string]any{
				"type":     map[string]any{"const": "rich_text_section"},
				"elements": arrayOf(ref("inline")),
			},
		},
		"richBlock": typed(
			enum("rich_text", "rich_text_section", "rich_text_list", "rich_text_quote", "rich_text_preformatted"),
			map[string]any{"elements": map[string]any{"type": "array"}},
			whenType("rich_text", elementsOf(ref("richBlock"))),
			whenType("rich_text_section", elementsOf(ref("inline"))),
			whenType("rich_text_list", map[string]any{
				"required": []any{"style"},
				"properties": map[string]any{
					"style":    enum("bullet", "ordered"),
					"elements": arrayOf(ref("richSection")),
				},
			}),
			whenType("rich_text_quote", elementsOf(ref("richSection"))),
			whenType("rich_text_preformatted", elementsOf(ref("inline"))),
		),
		"textObject": map[string]any{
			"type":     "object",
			"required": []any{"type", "text"},
			"properties": map[string]any{
				"type": enum("plain_text", "mrkdwn"),
				"text": map[string]any{"type": "string"},
			},
		},
		"layoutBlock": typed(
			enum("section", "divider", "image", "actions", "context", "header", "rich_text"),
			map[string]any{"block_id": map[string]any{"type": "string"}},
			whenType("section", map[string]any{
				"required":   []any{"text"},
				"properties": map[string]any{"text": ref("textObject")},
			}),
			whenType("header", map[string]any{
				"required":   []any{"text"},
				"properties": map[string]any{"text": ref("textObject")},
			}),
			whenType("context", map[string]any{
				"required": []any{"elements"},
				"properties": map[string]any{"elements": arrayOf(map[string]any{
					"type":     "object",
					"required": []any{"type"},
				})},
			}),
			whenType("image", map[string]any{
				"properties": map[string]any{
					"image_url": map[string]any{"type": "string"},
					"alt_text":  map[string]any{"type": "string"},
					"title":     ref("textObject"),
				},
			}),
			whenType("rich_text", elementsOf(ref("richBlock"))),
		),
	}
}

// typed builds an object schema discriminated by its "type" field.
func typed(typeSchema map[string]any, properties map[string]any, rules ...map[string]any) map[string]any {
	props := map[string]any{"type": typeSchema}
	for key, value := range properties {
		props[key] = value
	}
	allOf := make([]any, 0, len(rules))
	for _, rule := range rules {
		allOf = append(allOf, rule)
	}
	schema := map[string]any{
		"type":       "object",
		"required":   []any{"type"},
		"properties": props,
	}
	if len(allOf) > 0 {
		schema["allOf"] = allOf
	}
	return schema
}

func whenType(kind string, then map[string]any) map[string]any {
	return map[string]any{
		"if": map[string]any{
			"required":   []any{"type"},
			"properties": map[string]any{"type": map[string]any{"const": kind}},
		},
		"then": then,
	}
}

func requiredStrings(fields ...string) map[string]any {
	required := make([]any, 0, len(fields))
	props := make(map[string]any, len(fields))
	for _, field := range fields {
		required = append(required, field)
		props[field] = map[string]any{"type": "string"}
	}
	return map[string]any{"required": required, "properties": props}
}

func elementsOf(items map[string]any) map[string]any {
	return map[string]any{"properties": map[string]any{"elements": arrayOf(items)}}
}

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/$defs/" + name}
}

func enum(values ...string) map[string]any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		out = append(out, value)
	}
	return map[string]any{"enum": out}
}
