/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"html/template"
	"io"

	"github.com/cp4i-tools/chief/pkg/diffengine"
	"github.com/cp4i-tools/chief/pkg/resource"
)

const dashboardTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Cluster Report: {{.Report.ClusterID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
h2 { font-size: 1.1em; margin-top: 1.5em; }
table { border-collapse: collapse; margin-top: 0.5em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
th { background: #f0f0f0; }
.severity-Critical { color: #b00020; font-weight: bold; }
.severity-Important { color: #b36200; }
.severity-Informational { color: #555; }
.cards { display: flex; gap: 1em; margin-top: 1em; }
.card { border: 1px solid #ccc; border-radius: 6px; padding: 0.8em 1.2em; }
.card .num { font-size: 1.6em; font-weight: bold; }
</style>
</head>
<body>
<h1>Cluster Report: {{.Report.ClusterID}}</h1>
<p>Generated {{.Report.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</p>

<div class="cards">
<div class="card"><div class="num">{{.TotalResources}}</div>resources</div>
<div class="card"><div class="num">{{printf "%.2f" .Report.Categorization.LicensedVPCs}}</div>licensed VPCs</div>
<div class="card"><div class="num">{{.Report.Categorization.Workloads}}</div>workloads</div>
{{if .Report.Changes}}<div class="card"><div class="num">{{len .Report.Changes.Changes}}</div>changes</div>{{end}}
</div>

<h2>Resources by Kind</h2>
<table>
<tr><th>Kind</th><th>Count</th></tr>
{{range .Kinds}}<tr><td>{{.Kind}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

{{if .Changes}}
<h2>Changes Since Previous Snapshot</h2>
<table>
<tr><th>Severity</th><th>Type</th><th>Kind</th><th>Namespace</th><th>Name</th><th>Detail</th></tr>
{{range .Changes}}<tr><td class="severity-{{.Severity}}">{{.Severity}}</td><td>{{.Type}}</td><td>{{.Kind}}</td><td>{{.Namespace}}</td><td>{{.Name}}</td><td>{{.Detail}}</td></tr>
{{end}}</table>
{{else}}
<h2>Changes Since Previous Snapshot</h2>
<p>No changes detected.</p>
{{end}}
</body>
</html>
`

var dashboard = template.Must(template.New("dashboard").Parse(dashboardTemplate))

type kindCount struct {
	Kind  resource.Kind
	Count int
}

type dashboardData struct {
	Report         *Report
	TotalResources int
	Kinds          []kindCount
	Changes        []diffengine.Change
}

// WriteHTML renders the report as a standalone HTML dashboard.
func WriteHTML(w io.Writer, r *Report) error {
	data := dashboardData{Report: r}

	for _, kind := range sortedKinds(r.ResourceCounts) {
		count := r.ResourceCounts[kind]
		data.TotalResources += count
		data.Kinds = append(data.Kinds, kindCount{Kind: kind, Count: count})
	}
	if r.Changes != nil {
		data.Changes = r.Changes.Changes
	}

	return dashboard.Execute(w, data)
}
