package templates

const layoutHTML = `{{define "layout"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Shipping Label Generator</title>
  <script src="/static/htmx.min.js"></script>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #f9fafb;
    }
    .container { max-width: 760px; margin: 0 auto; }
    .card {
      background: #ffffff;
      border: 1px solid #e5e7eb;
      border-radius: 8px;
      padding: 24px;
      margin-bottom: 24px;
    }
    h1 { font-size: 22px; margin: 0 0 4px; }
    h2 { font-size: 16px; margin: 0 0 12px; }
    .muted { color: #6b7280; font-size: 13px; }
    nav { margin-bottom: 24px; font-size: 14px; }
    nav a { color: #1d4ed8; text-decoration: none; margin-right: 16px; }
    label { display: block; font-size: 13px; margin: 10px 0 4px; }
    input[type=text], input[type=number], input[type=date], input[type=file] {
      width: 100%;
      padding: 8px;
      border: 1px solid #d1d5db;
      border-radius: 6px;
      font-size: 14px;
    }
    .checkbox-row { display: flex; align-items: center; gap: 8px; margin: 6px 0; font-size: 14px; }
    .checkbox-row label { margin: 0; }
    .row2 { display: flex; gap: 16px; }
    .row2 > div { flex: 1; }
    button {
      background: #1d4ed8;
      color: #ffffff;
      border: none;
      border-radius: 6px;
      padding: 10px 18px;
      font-size: 14px;
      cursor: pointer;
      margin-top: 14px;
    }
    button.secondary { background: #6b7280; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th, td { padding: 8px 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    th { text-transform: uppercase; font-size: 11px; letter-spacing: 0.04em; color: #6b7280; }
    pre.label-sample {
      background: #f3f4f6;
      border: 1px dashed #d1d5db;
      border-radius: 6px;
      padding: 10px;
      font-size: 13px;
      margin: 8px 0;
    }
    .stat-grid { display: flex; flex-wrap: wrap; gap: 16px; }
    .stat { background: #f3f4f6; border-radius: 6px; padding: 12px 16px; min-width: 120px; }
    .stat .value { font-size: 20px; font-weight: bold; }
    .stat .label { font-size: 11px; text-transform: uppercase; color: #6b7280; }
    .warning { background: #fef3c7; border: 1px solid #fcd34d; border-radius: 6px; padding: 10px 14px; font-size: 13px; }
    #toast {
      position: fixed; top: 16px; right: 16px; padding: 12px 18px;
      border-radius: 6px; color: #ffffff; font-size: 14px; display: none;
    }
    #toast.success { background: #059669; }
    #toast.warning { background: #d97706; }
    #toast.error { background: #dc2626; }
  </style>
</head>
<body>
  <div class="container">
    <nav>
      <a href="/">Generate</a>
      <a href="/runs">History</a>
      <a href="/settings">Settings</a>
      <a href="/labels/template">Order template</a>
    </nav>
    {{template "content" .}}
  </div>
  <div id="toast"></div>
  <script>
    function showToast(message, type) {
      var toast = document.getElementById("toast");
      toast.textContent = message;
      toast.className = type;
      toast.style.display = "block";
      setTimeout(function () { toast.style.display = "none"; }, 4000);
    }
    document.body.addEventListener("showToast", function (evt) {
      showToast(evt.detail.message, evt.detail.type);
    });
    // Flash toasts survive regular (non-HTMX) redirects via a short-lived cookie.
    var flash = document.cookie.split("; ").find(function (c) { return c.indexOf("flash_toast=") === 0; });
    if (flash) {
      try {
        var data = JSON.parse(decodeURIComponent(flash.slice("flash_toast=".length)));
        showToast(data.message, data.type);
      } catch (e) {}
      document.cookie = "flash_toast=; Max-Age=0; path=/";
    }
  </script>
</body>
</html>{{end}}`

const uploadHTML = `{{define "content"}}
<div class="card">
  <h1>Shipping Label Generator</h1>
  <p class="muted">Upload an order export (.csv or .xlsx, max {{.MaxUploadMB}}MB), pick the products
  and date range, and download a printable A4 sheet with 24 labels per page.</p>
  <form hx-post="/labels/upload" hx-target="#workspace" hx-swap="innerHTML" enctype="multipart/form-data">
    <label for="file">Order export</label>
    <input type="file" id="file" name="file" accept=".csv,.xlsx" required />
    <button type="submit">Upload</button>
  </form>
</div>
<div id="workspace"></div>
{{end}}`

const filterFormHTML = `<div class="card">
  <h2>{{.FileName}}</h2>
  <p class="muted">{{.RowCount}} rows loaded.</p>
  <form id="filter-form" method="post" action="/labels/pdf">
    <input type="hidden" name="rows_json" value="{{.RowsJSON}}" />
    <input type="hidden" name="file_name" value="{{.FileName}}" />

    <label>Products</label>
    {{range $i, $p := .Products}}
    <div class="checkbox-row">
      <input type="checkbox" id="product_{{$i}}" name="products" value="{{$p}}" checked />
      <label for="product_{{$i}}">{{$p}}</label>
    </div>
    {{else}}
    <p class="warning">No products found in this file.</p>
    {{end}}

    <label>Sort by payment date</label>
    <div class="checkbox-row">
      <input type="radio" id="sort_newest" name="sort_order" value="newest_first" checked />
      <label for="sort_newest">Newest first</label>
    </div>
    <div class="checkbox-row">
      <input type="radio" id="sort_oldest" name="sort_order" value="oldest_first" />
      <label for="sort_oldest">Oldest first</label>
    </div>

    <div class="row2">
      <div>
        <label for="start_date">From date</label>
        <input type="date" id="start_date" name="start_date" value="{{.MinDate}}" />
      </div>
      <div>
        <label for="end_date">Up to and including</label>
        <input type="date" id="end_date" name="end_date" value="{{.MaxDate}}" />
      </div>
    </div>

    <div class="row2">
      <div>
        <label for="min_quantity">Minimum quantity</label>
        <input type="number" id="min_quantity" name="min_quantity" value="1" min="1" />
      </div>
      <div>
        <label for="max_quantity">Maximum quantity (empty = no limit)</label>
        <input type="number" id="max_quantity" name="max_quantity" min="1" />
      </div>
    </div>

    <button type="button" hx-post="/labels/preview" hx-include="#filter-form"
      hx-target="#results" hx-swap="innerHTML">Preview</button>
    <button type="submit">Download PDF</button>
    <button type="submit" class="secondary"
      formaction="/labels/recipients">Download recipient list</button>
  </form>
</div>
<div id="results"></div>`

const previewHTML = `<div class="card">
  <h2>Preview</h2>
  {{if eq .Stats.UniqueLabels 0}}
  <p class="warning">No labels generated: no rows match the current filters.</p>
  {{else}}
  <div class="stat-grid">
    <div class="stat"><div class="value">{{.Stats.TotalRows}}</div><div class="label">Rows</div></div>
    <div class="stat"><div class="value">{{.Stats.MatchedRows}}</div><div class="label">Matched</div></div>
    <div class="stat"><div class="value">{{.Stats.UniqueLabels}}</div><div class="label">Labels</div></div>
    <div class="stat"><div class="value">{{.Stats.PagesNeeded}}</div><div class="label">Pages</div></div>
    <div class="stat"><div class="value">&euro;{{printf "%.2f" .Stats.Revenue}}</div><div class="label">Revenue</div></div>
  </div>
  {{if gt .Stats.TruncatedLabels 0}}
  <p class="warning">{{.Stats.TruncatedLabels}} label(s) exceed the line limit and will be shortened.</p>
  {{end}}
  <h2 style="margin-top:18px">First labels</h2>
  {{range .SampleLabels}}<pre class="label-sample">{{.}}</pre>{{end}}
  {{if gt .MoreCount 0}}<p class="muted">&hellip; and {{.MoreCount}} more.</p>{{end}}
  {{end}}
</div>`

const runsHTML = `{{define "content"}}
<div class="card">
  <h1>Generation history</h1>
  {{if .Runs}}
  <table>
    <tr><th>Generated</th><th>File</th><th>Labels</th><th>Pages</th><th>Sort</th><th>Products</th></tr>
    {{range .Runs}}
    <tr>
      <td>{{.Created}}</td>
      <td>{{.FileName}}</td>
      <td>{{.LabelCount}}</td>
      <td>{{.PageCount}}</td>
      <td>{{.SortOrder}}</td>
      <td class="muted">{{.Products}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p class="muted">No label sheets generated yet.</p>
  {{end}}
</div>
{{end}}`

const settingsHTML = `{{define "content"}}
<div class="card">
  <h1>Label settings</h1>
  {{if .Saved}}<p class="warning">Settings saved.</p>{{end}}
  <form method="post" action="/settings">
    <div class="row2">
      <div>
        <label for="chars_per_line">Characters per line</label>
        <input type="number" id="chars_per_line" name="chars_per_line" value="{{.CharsPerLine}}" min="10" max="80" />
      </div>
      <div>
        <label for="max_lines">Maximum lines per label</label>
        <input type="number" id="max_lines" name="max_lines" value="{{.MaxLines}}" min="3" max="8" />
      </div>
    </div>
    <div class="checkbox-row" style="margin-top:12px">
      <input type="checkbox" id="show_grid_lines" name="show_grid_lines" value="true" {{if .ShowGridLines}}checked{{end}} />
      <label for="show_grid_lines">Draw visible grid lines (plain paper); off for pre-cut sticker sheets</label>
    </div>
    <button type="submit">Save</button>
  </form>
</div>
{{end}}`
