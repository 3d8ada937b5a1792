package cli

const usageTemplate = `
SheetSync Client

Usage:
  sheetsync [OPTIONS] COMMAND

Options:
  --version      Show version information
  --server URL   Server URL (default: http://localhost:8080)
  --db PATH      Path to local database (default: sheetsync-client.db)
  --backend NAME Local storage backend, bolt or sqlite (default: bolt)
  --lww          Resolve conflicts by last write wins instead of asking

Commands:
  register                      Register new account
  login                         Login to server
  logout                        Logout from server
  status                        Show session and sync status
  character add                 Create a character sheet
  character list                List character sheets
  character get <id>            Show a character sheet
  character edit <id>           Edit a character sheet
  character delete <id>         Delete a character sheet
  party add                     Create a party
  party list                    List parties
  party get <id>                Show a party
  party edit <id>               Edit a party
  party delete <id>             Delete a party
  sync                          Synchronize with server
  watch                         Keep syncing until interrupted
  conflicts                     List unresolved conflicts
  resolve <id> <local|server>   Resolve a conflict
  retry                         Re-arm failed sync operations

All edits work offline; run 'sheetsync sync' when connected.
`

const characterListTemplate = `
=== Characters ===

{{- if eq (len .) 0 }}
No characters found.

Use 'sheetsync character add' to create your first sheet.
{{ else }}
Found {{len .}} character(s):
{{ range . }}
- {{ .Character.Name }} ({{ .Character.Class }} {{ .Character.Level }})
   ID:     {{ .Character.ID }}
   Status: {{ .SyncStatus }}
{{ end }}
Use 'sheetsync character get <id>' to view a full sheet.
{{- end }}
`

const characterTemplate = `
=== Character Sheet ===

Name:     {{.Character.Name}}
ID:       {{.Character.ID}}
Class:    {{.Character.Class}}
Ancestry: {{.Character.Ancestry}}
Level:    {{.Character.Level}}
HP:       {{.Character.HitPoints}}/{{.Character.MaxHP}}
{{- if .Character.Attributes }}

Attributes:
{{- range $name, $value := .Character.Attributes }}
  {{ $name }}: {{ $value }}
{{- end }}
{{- end }}
{{- if .Character.Notes }}

Notes:
{{.Character.Notes}}
{{- end }}

Sync status: {{.SyncStatus}}
`

const partyListTemplate = `
=== Parties ===

{{- if eq (len .) 0 }}
No parties found.

Use 'sheetsync party add' to create one.
{{ else }}
Found {{len .}} party(ies):
{{ range . }}
- {{ .Party.Name }}
   ID:      {{ .Party.ID }}
   Members: {{ len .Party.MemberIDs }}
   Status:  {{ .SyncStatus }}
{{ end }}
{{- end }}
`

const partyTemplate = `
=== Party ===

Name: {{.Party.Name}}
ID:   {{.Party.ID}}
{{- if .Party.Description }}
About: {{.Party.Description}}
{{- end }}
{{- if .Party.MemberIDs }}

Members:
{{- range .Party.MemberIDs }}
  - {{ . }}
{{- end }}
{{- end }}

Sync status: {{.SyncStatus}}
`

const conflictListTemplate = `
=== Unresolved Conflicts ===

{{- if eq (len .) 0 }}
No conflicts. Everything is settled.
{{ else }}
Found {{len .}} conflict(s):
{{ range . }}
- Conflict {{ .ID }}
   Entity:         {{ .EntityType }} {{ .EntityID }}
   Detected:       {{ .DetectedAt.Format "2006-01-02 15:04:05" }}
   Server updated: {{ .ServerUpdated.Format "2006-01-02 15:04:05" }}
   Local version:  {{ if .HasLocalSnapshot }}{{ printf "%s" .LocalSnapshot }}{{ else }}(deleted){{ end }}
   Server version: {{ if .HasServerSnapshot }}{{ printf "%s" .ServerSnapshot }}{{ else }}(deleted){{ end }}
{{ end }}
Use 'sheetsync resolve <id> local' to keep your version,
or 'sheetsync resolve <id> server' to accept the server's.
{{- end }}
`
