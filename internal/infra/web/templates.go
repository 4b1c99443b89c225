package web

import "html/template"

const shell = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width,initial-scale=1" />
<title>{{template "title" .}}</title>
<style>
body{font-family:system-ui,Arial,sans-serif;margin:2rem;}
nav a{margin-right:12px;}
table{border-collapse:collapse;min-width:480px;}
th,td{border:1px solid #ddd;padding:6px 12px;text-align:left;}
td.amount{text-align:right;}
.balance{font-size:1.2rem;margin:16px 0;}
.error{color:#b00020;}
.btn{display:inline-block;padding:8px 14px;border-radius:8px;border:1px solid #888;text-decoration:none}
</style>
</head>
<body>
<nav>{{range .Nav}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</nav>
{{template "body" .}}
</body>
</html>`

var historyPage = template.Must(template.New("history").Parse(shell + `
{{define "title"}}Credits{{end}}
{{define "body"}}
<h2>Transaction History</h2>
<p class="balance">Current balance: <strong>{{.Balance}}</strong></p>
<table>
<tr><th>Timestamp</th><th>Amount</th><th>Description</th></tr>
{{range .Rows}}<tr><td>{{.Timestamp}}</td><td class="amount">{{.Amount}}</td><td>{{.Comment}}</td></tr>
{{else}}<tr><td colspan="3">No transactions yet.</td></tr>{{end}}
</table>
<p><a class="btn" href="/credits/add">Buy credits</a></p>
{{end}}`))

var addPage = template.Must(template.New("add").Parse(shell + `
{{define "title"}}Buy Credits{{end}}
{{define "body"}}
<h2>Buy Credits</h2>
<p class="balance">Current balance: <strong>{{.Balance}}</strong></p>
{{if .ValidationError}}<p class="error">{{.ValidationError}}</p>{{end}}
<form method="post" action="/credits/add">
<label>Amount (whole dollars): <input type="text" name="amount" value="{{.Amount}}" /></label>
<button type="submit">Purchase</button>
</form>
{{end}}`))

var payPage = template.Must(template.New("pay").Parse(shell + `
{{define "title"}}Pay Invoice{{end}}
{{define "body"}}
<h2>Invoice {{.InvoiceID}}</h2>
<table>
<tr><th>Description</th><th>Qty</th><th>Unit</th><th>Total</th></tr>
{{range .Items}}<tr><td>{{.Description}}</td><td class="amount">{{.Qty}}</td><td class="amount">{{.Unit}}</td><td class="amount">{{.Total}}</td></tr>{{end}}
</table>
<p class="balance">Total due: <strong>{{.Total}}</strong> ({{.Status}})</p>
{{end}}`))

type historyRow struct {
	Timestamp string
	Amount    string
	Comment   string
}

type historyData struct {
	Nav     []MenuEntry
	Balance string
	Rows    []historyRow
}

type addData struct {
	Nav             []MenuEntry
	Balance         string
	Amount          string
	ValidationError string
}

type payItem struct {
	Description string
	Qty         int64
	Unit        string
	Total       string
}

type payData struct {
	Nav       []MenuEntry
	InvoiceID string
	Items     []payItem
	Total     string
	Status    string
}
