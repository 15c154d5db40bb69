/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gofql/fql/internal/config"
	"github.com/gofql/fql/internal/fsdemo"
	"github.com/gofql/fql/pkg/fql"
)

func main() {
	tmpl := template.New("template")
	tmpl, err := tmpl.Parse(`<style type="text/css">
.tg  {border-collapse:collapse;border-spacing:0;}
.tg td{border-color:black;border-style:solid;border-width:1px;font-family:Arial, sans-serif;font-size:14px;
  overflow:hidden;padding:10px 5px;word-break:normal;}
.tg th{border-color:black;border-style:solid;border-width:1px;font-family:Arial, sans-serif;font-size:14px;
  font-weight:normal;overflow:hidden;padding:10px 5px;word-break:normal;}
.tg .tg-zv4m{border-color:#ffffff;text-align:left;vertical-align:top}
textarea, pre, input {font-family:Consolas,monospace; font-size:14px}
h1, body, label {font-family: Lato,proxima-nova,Helvetica Neue,Arial,sans-serif}
textarea, input {
	box-sizing: border-box;
	border: 1px solid;
	background-color: #f8f8f8;
	resize: none;
  }
</style>
<h1>fql filesystem query evaluator</h1>
<table class="tg">
<thead>
  <tr valign="top">
	<th class="tg-zv4m">
<form method="POST">
<label>Root directory</label>:<br />
<input type="text" size="80" name="Root" placeholder="/etc" value="{{ .Root }}"><br /><br />
<label>Query</label>:<br />
<pre>
<textarea name="Query" cols="80" rows="10" placeholder="path:/etc and not symlink">{{ .Query }}</textarea>
</pre>
<input type="submit" value="Evaluate">
</form>
	</th>
	<th class="tg-zv4m">
	   &nbsp;&nbsp;&nbsp;&nbsp;&nbsp;
	</th>
	<th class="tg-zv4m">
	<label>Output:</label><br /><br />
{{if .QueryError}}
	<br />Invalid query: {{ .QueryError }}<br />
{{end}}
<pre>
{{ .Output }}<br />
</pre>
	</th>
  </tr>
</thead>
</table>
`)
	if err != nil {
		log.Fatal(err)
	}

	priorities := config.Default()

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		type page struct {
			Root       string
			Query      string
			QueryError error
			Output     string
		}

		if r.Method != http.MethodPost {
			if e := tmpl.Execute(w, nil); e != nil {
				respondWithError(w, e)
			}
			return
		}

		root := r.FormValue("Root")
		query := r.FormValue("Query")
		op := page{Root: root, Query: query}

		env := fsdemo.NewEnvironment(priorities)
		tree, err := fql.Parse("path:" + root + " and ( " + query + " )")
		if err != nil {
			op.QueryError = err
			if e := tmpl.Execute(w, op); e != nil {
				respondWithError(w, e)
			}
			return
		}
		tree = fql.Normalize(tree, env.Priority)

		stream, err := fql.Eval[fsdemo.Item](tree, env, nil, true)
		if err != nil {
			op.QueryError = err
			if e := tmpl.Execute(w, op); e != nil {
				respondWithError(w, e)
			}
			return
		}

		items, err := fql.Drain(stream)
		if err != nil {
			op.QueryError = err
			if e := tmpl.Execute(w, op); e != nil {
				respondWithError(w, e)
			}
			return
		}

		paths := make([]string, len(items))
		for i, item := range items {
			paths[i] = item.Path()
		}
		op.Output = strings.Join(paths, "\n")

		if e := tmpl.Execute(w, op); e != nil {
			respondWithError(w, e)
		}
	})

	if e := http.ListenAndServe(":8080", nil); e != nil {
		log.Fatal(e)
	}
}

func respondWithError(w http.ResponseWriter, err error) {
	log.Println(err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
