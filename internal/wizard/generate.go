package wizard

import (
	"bytes"
	"text/template"
)

const configTemplate = `# jelastic-inventory configuration
# Credentials are read from JELASTIC_USER_ID / JELASTIC_USER_PASSWORD.

app_url: {{ .AppURL }}
app_id: {{ .AppID }}

cache_dir: {{ .CacheDir }}
cache_ttl: {{ .CacheTTL }}

ssh_gateway: {{ .SSHGate }}
ssh_port: {{ .SSHPort }}

group_by_environment: true
group_by_node_type: {{ if .GroupByNodeType }}true{{ else }}false{{ end }}
group_by_node_class: {{ if .GroupByNodeClass }}true{{ else }}false{{ end }}

# Ordered nodeType-prefix to class table; the first matching prefix wins.
node_classes:
  - prefix: cp
    class: appserver
  - prefix: bl
    class: loadbalancer
  - prefix: sqldb
    class: database
`

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers Answers) (string, error) {
	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}
	return buf.String(), nil
}
