package api

import (
	"html/template"
	"net/http"

	"davenews/feed"

	"github.com/gin-gonic/gin"
)

const pageName = "page"

var pageTemplate = template.Must(template.New(pageName).Funcs(template.FuncMap{
	"label": feed.CategoryLabel,
}).Parse(pageHTML))

// pageData is what the grid page renders
type pageData struct {
	feed.Snapshot
	Categories []string
}

// Loading reports whether the page should poll for the pending fetch
func (p pageData) Loading() bool { return p.Phase == feed.PhaseLoading }

// Failed reports whether the error banner is shown
func (p pageData) Failed() bool { return p.Phase == feed.PhaseError }

// RegisterPageRoutes registers the HTML grid page and its form endpoints.
func RegisterPageRoutes(r *gin.Engine, fc *feedController) {
	r.GET("/", fc.handlePage)
	r.POST("/search", fc.handlePageSearch)
	r.POST("/category/:name", fc.handlePageCategory)
}

func (fc *feedController) handlePage(c *gin.Context) {
	c.HTML(http.StatusOK, pageName, pageData{
		Snapshot:   fc.view.Snapshot(),
		Categories: feed.Categories(),
	})
}

func (fc *feedController) handlePageSearch(c *gin.Context) {
	fc.dispatch(fc.view.SubmitSearch(c.PostForm("search")))
	c.Redirect(http.StatusSeeOther, "/")
}

func (fc *feedController) handlePageCategory(c *gin.Context) {
	req, err := fc.view.SelectCategory(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fc.dispatch(req)
	c.Redirect(http.StatusSeeOther, "/")
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
{{- if .Loading}}
<meta http-equiv="refresh" content="2">
{{- end}}
<title>Dave News</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0 auto; max-width: 1200px; padding: 1rem; }
form.search { display: flex; gap: .5rem; margin-bottom: 1rem; }
form.search input { flex: 1; padding: .5rem; }
nav { display: flex; flex-wrap: wrap; gap: .5rem; margin-bottom: 1rem; }
nav form { margin: 0; }
nav button.active { font-weight: bold; text-decoration: underline; }
.grid { display: grid; gap: 1rem; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); }
.card { border: 1px solid #E5E7EB; border-left-width: 4px; border-radius: 8px; padding: 1rem; }
.card img { width: 100%; border-radius: 4px; }
.badge { border-radius: 999px; display: inline-block; padding: .25rem .5rem; }
.meta { color: #6B7280; font-size: .85rem; }
.error { background: #FEE2E2; color: #B91C1C; padding: 1rem; border-radius: 8px; }
.loading { color: #6B7280; padding: 2rem; text-align: center; }
</style>
</head>
<body>
<h1>Dave News</h1>
<form class="search" method="post" action="/search">
<input type="text" name="search" placeholder="Search news..." value="{{.Query}}">
<button type="submit">Search</button>
</form>
<nav>
{{- range .Categories}}
<form method="post" action="/category/{{.}}"><button type="submit"{{if eq . $.Category}} class="active"{{end}}>{{label .}}</button></form>
{{- end}}
</nav>
{{- if .Loading}}
<div class="loading">Loading...</div>
{{- else if .Failed}}
<div class="error">{{.Message}}</div>
{{- else}}
<div class="grid">
{{- range .Cards}}
<article class="card media-{{.Media}}" style="border-color: {{.Style.Border}}; border-left-color: {{.Style.Accent}}">
{{- if .Article.URLToImage}}
<img src="{{.Article.URLToImage}}" alt="{{.Article.Title}}">
{{- end}}
<span class="badge" style="background: {{.Style.Background}}">{{.Style.Icon}}</span>
<h2>{{.Article.Title}}</h2>
<p>{{.Article.Description}}</p>
{{- with .Article.Author}}
<p class="meta">By {{.}}</p>
{{- end}}
<p class="meta">{{.Article.Source.Name}} &middot; {{.Article.PublishedDate}}</p>
<a href="{{.Article.URL}}" style="color: {{.Style.Accent}}" target="_blank" rel="noopener noreferrer">{{.Style.CTA}}</a>
</article>
{{- end}}
</div>
{{- end}}
</body>
</html>
`
