package handler

const tmplDashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Automobile Sales Dashboard</title>
<style>
body{font-family:Arial,Helvetica,sans-serif;margin:0 24px 24px;color:#1f2328}
h1{text-align:center;color:#503D36;font-size:24px}
.dropdown{margin:8px 0}
.dropdown label{display:block;font-weight:600;margin-bottom:4px}
.dropdown select{width:80%;padding:3px;font-size:20px;text-align-last:center}
#output-container{display:flex;flex-wrap:wrap}
.chart-item{display:flex;width:100%}
.chart-item img{flex:1;min-width:0;max-width:50%}
.output-actions{margin:8px 0;font-size:13px}
.output-empty{color:#8b949e;padding:16px 0}
</style>
</head>
<body>
<h1>Automobile Sales Dashboard</h1>

<div class="dropdown">
  <label for="report-type">Select Statistics:</label>
  <select id="report-type">
    <option value="" disabled>Select report type</option>
    {{range .Options.ReportKinds}}<option value="{{.Value}}"{{if eq .Value $.DefaultReportKind}} selected{{end}}>{{.Label}}</option>
    {{end}}
  </select>
</div>

<div id="year-container" class="dropdown" style="display:{{.YearDisplay}}">
  <select id="select-year">
    {{range .Options.Years}}<option value="{{.}}"{{if eq . $.Options.DefaultYear}} selected{{end}}>{{.}}</option>
    {{end}}
  </select>
</div>

<div class="output-actions"><a id="export-link" href="#">Download xlsx</a></div>
<div id="output-container" class="output"></div>

<script>
(function () {
  const reportType = document.getElementById('report-type');
  const selectYear = document.getElementById('select-year');
  const yearContainer = document.getElementById('year-container');
  const output = document.getElementById('output-container');
  const exportLink = document.getElementById('export-link');

  function query() {
    const params = new URLSearchParams({report_kind: reportType.value});
    if (yearContainer.style.display !== 'none' && selectYear.value) {
      params.set('year', selectYear.value);
    }
    return params;
  }

  async function updateYearSelector() {
    const params = new URLSearchParams({report_kind: reportType.value});
    const resp = await fetch('/v1/dashboard/year-selector?' + params);
    if (!resp.ok) return;
    const state = await resp.json();
    yearContainer.style.display = state.display;
  }

  // Só a seleção mais recente pode escrever no output
  let renderSeq = 0;

  async function renderCharts() {
    const seq = ++renderSeq;
    const params = query();
    exportLink.href = '/v1/dashboard/export?' + params;

    const resp = await fetch('/v1/dashboard/charts?' + params);
    if (seq !== renderSeq) return;
    output.innerHTML = '';
    if (!resp.ok) {
      output.innerHTML = '<div class="output-empty">Invalid selection</div>';
      return;
    }

    const view = await resp.json();
    if (seq !== renderSeq) return;
    let row = null;
    view.charts.forEach(function (chart, i) {
      if (i % 2 === 0) {
        row = document.createElement('div');
        row.className = 'chart-item';
        output.appendChild(row);
      }
      const img = document.createElement('img');
      img.alt = chart.title;
      img.src = '/v1/dashboard/charts/' + chart.position + '?' + params + '&r=' + view.render_id;
      row.appendChild(img);
    });
  }

  reportType.addEventListener('change', async function () {
    await updateYearSelector();
    await renderCharts();
  });
  selectYear.addEventListener('change', renderCharts);

  renderCharts();
})();
</script>
</body>
</html>
`
