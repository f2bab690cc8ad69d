package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"momentclass/internal/category"
	"momentclass/internal/schema"
)

// DemoText is the built-in demonstration input rendered when the tool
// is invoked without arguments.
const DemoText = "I've got my backyard mostly cleaned up and can get to work on some new projects out there."

const classifyTemplate = `You are a system designed to classify written descriptions of happy moments.
I will give you the text of a happy moment, and you should classify it into one of the following categories: {{.Categories}}
You will provide an explanation with your decision.

Return your response as JSON according to the following JSON schema:

` + "```" + `
{{.Schema}}
` + "```" + `

Do not return anything else except your response as JSON. Do not return a JSON schema.
Return an object that follows the schema.

Input: {{.Text}}
Output:
`

var classify = template.Must(template.New("classify").Parse(classifyTemplate))

type values struct {
	Categories string
	Schema     string
	Text       string
}

// Render builds the classification instruction prompt for the given
// moment text. Pure function of its input: same text, same prompt,
// byte for byte.
func Render(text string) (string, error) {
	js, err := schema.ClassificationResult().JSON()
	if err != nil {
		return "", fmt.Errorf("serialize schema: %w", err)
	}

	var buf strings.Builder
	err = classify.Execute(&buf, values{
		Categories: categoryList(),
		Schema:     js,
		Text:       text,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// categoryList renders the categories as a single-quoted list, in
// declaration order: ['achievement', 'affection', ...]
func categoryList() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range category.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(string(c))
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}
