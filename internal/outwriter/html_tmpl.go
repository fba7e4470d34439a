package outwriter

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>PDP Status Dashboard</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --done: #2ecc71; --progress: #f1c40f; --pending: #e74c3c; --na: #95a5a6;
  --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd;
    --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
h2 { font-size: 1.125rem; margin: 1rem 0 .5rem; }
.badges { display: grid; grid-template-columns: repeat(auto-fit, minmax(140px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.badge { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.badge .value { font-size: 1.5rem; font-weight: 700; }
.badge .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box.wide { grid-column: 1 / -1; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.project { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .project { grid-template-columns: 1fr; } }
.selector select, .filters input { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; }
.filters { margin-bottom: 1rem; }
.filters input { min-width: 240px; }
.meta dt { font-weight: 700; font-size: .8125rem; }
.meta dd { margin-bottom: .375rem; font-size: .8125rem; }
.innovation { border-left: 4px solid var(--progress); background: var(--bg); padding: .5rem .75rem; margin: .5rem 0; font-size: .8125rem; }
.card-row { display: grid; grid-template-columns: repeat(3, 1fr); gap: .5rem; margin-top: .5rem; }
.progress-card { background: #fff; color: #1a1a2e; border-left: 5px solid; border-radius: 10px; padding: .5rem .75rem; font-size: .75rem; box-shadow: 0 3px 6px rgba(0,0,0,.05); transition: transform .2s; }
.progress-card:hover { transform: translateY(-2px); }
.progress-card strong { display: block; font-size: .8125rem; }
.progress-status { display: block; font-weight: 500; margin-top: .25rem; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
thead { position: sticky; top: 0; background: var(--card-bg); }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); white-space: nowrap; }
tr:nth-child(even) { background: var(--table-alt); }
tr:hover { background: var(--hover); }
.table-wrap { overflow-x: auto; }
.hidden { display: none; }
</style>
</head>
<body>
<header>
  <h1>PDP Status Dashboard</h1>
  <p>{{.Source}} &middot; Generated {{.GeneratedAt}} &middot; {{len .Projects}} project(s)</p>
</header>

<section class="badges" id="summary">
  {{range .Badges}}<div class="badge"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div></div>
  {{end}}
</section>

<section class="charts" id="charts">
  <div class="chart-box wide"><h3>Stage Status</h3><div id="chart-stages"></div></div>
  <div class="chart-box"><h3>MVP Status</h3><div id="chart-mvp"></div></div>
  <div class="chart-box"><h3>Project Categories</h3><div id="chart-categories"></div></div>
</section>

{{if .Selected}}
<section id="project">
  <h2>Project</h2>
  <div class="selector">
    <select id="project-select" onchange="selectProject(this.selectedIndex)">
      {{range .Projects}}<option{{if eq . $.Selected.Project}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </div>
  <div class="project">
    <div class="chart-box"><h3>Stage Radar</h3><div id="chart-radar"></div></div>
    <div class="chart-box" id="detail">
      <h3>{{.Selected.Project}}</h3>
      <dl class="meta">
        <dt>Founder</dt><dd>{{.Selected.Founder}}</dd>
        <dt>Category</dt><dd>{{.Selected.Category}}</dd>
        <dt>Decision</dt><dd>{{.Selected.Decision}}</dd>
        <dt>Description</dt><dd>{{.Selected.Description}}</dd>
        <dt>Contact</dt><dd>{{.Selected.Phone}} &middot; {{.Selected.Email}}</dd>
      </dl>
      {{with .Selected.Novelty}}<div class="innovation"><strong>Key Innovation</strong><br>{{.}}</div>{{end}}
      {{range cardRows .Selected}}<div class="card-row">{{range .}}<div class="progress-card" style="border-color: {{.Color}}"><strong>{{.Stage}}</strong><span class="progress-status" style="color: {{.Color}}">{{.Status}}</span></div>{{end}}</div>
      {{end}}
    </div>
  </div>
</section>
{{end}}

<section id="projects">
  <h2>Projects</h2>
  <div class="filters"><input type="text" id="filter-search" placeholder="Search projects..." oninput="applySearch()"></div>
  <div class="table-wrap">
  <table>
  <thead><tr>{{range .Table.Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>
  {{range .Table.Rows}}<tr class="project-row">{{range .}}<td>{{.}}</td>{{end}}</tr>
  {{end}}
  </tbody>
  </table>
  </div>
</section>

<script>
var chartData = {{json .ChartData}};
var palette = ["#0d6efd","#6f42c1","#20c997","#fd7e14","#e83e8c","#17a2b8","#6c757d","#28a745"];

function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

function svgText(x, y, text, attrs) {
  var t = svgEl("text", Object.assign({x:x, y:y, fill:"currentColor", "font-size":"11"}, attrs || {}));
  t.textContent = text;
  return t;
}

function clip(s, n) { return s.length > n ? s.slice(0, n-2)+"..." : s; }

function renderStackedBars(id) {
  var c = document.getElementById(id); if (!c) return;
  var stages = chartData.stageOrder, statuses = chartData.statuses;
  var totals = stages.map(function(_, i) {
    return statuses.reduce(function(a, s) { return a + chartData.series[s][i]; }, 0);
  });
  var max = Math.max.apply(null, totals) || 1;
  var h = stages.length * 26 + 30;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 640 "+h});
  for (var i = 0; i < stages.length; i++) {
    var y = i*26+2, x = 200;
    svg.appendChild(svgText(195, y+14, clip(stages[i], 32), {"text-anchor":"end"}));
    for (var j = 0; j < statuses.length; j++) {
      var v = chartData.series[statuses[j]][i];
      if (!v) continue;
      var w = (v/max)*400;
      var rect = svgEl("rect", {x:x, y:y, width:w, height:20, fill:chartData.colors[statuses[j]]});
      var tip = svgEl("title", {}); tip.textContent = statuses[j]+": "+v; rect.appendChild(tip);
      svg.appendChild(rect);
      x += w;
    }
  }
  var lx = 200, ly = stages.length*26 + 18;
  for (var k = 0; k < statuses.length; k++) {
    svg.appendChild(svgEl("rect", {x:lx, y:ly-9, width:10, height:10, fill:chartData.colors[statuses[k]], rx:2}));
    svg.appendChild(svgText(lx+14, ly, statuses[k]));
    lx += 24 + statuses[k].length*6;
  }
  c.appendChild(svg);
}

function renderPie(id, counts, colorOf) {
  var c = document.getElementById(id); if (!c) return;
  var total = counts.reduce(function(a,b){return a+b.count},0);
  if (!total) { c.textContent = "No data"; return; }
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 320 170"});
  var cx=80, cy=85, r=70, angle=-Math.PI/2;
  for (var i = 0; i < counts.length; i++) {
    var slice = (counts[i].count/total)*Math.PI*2;
    if (counts.length === 1) {
      svg.appendChild(svgEl("circle", {cx:cx, cy:cy, r:r, fill:colorOf(counts[i].value, i)}));
      break;
    }
    var x1=cx+r*Math.cos(angle), y1=cy+r*Math.sin(angle);
    angle += slice;
    var x2=cx+r*Math.cos(angle), y2=cy+r*Math.sin(angle);
    var large = slice > Math.PI ? 1 : 0;
    var d = "M"+cx+","+cy+" L"+x1+","+y1+" A"+r+","+r+" 0 "+large+",1 "+x2+","+y2+" Z";
    svg.appendChild(svgEl("path", {d:d, fill:colorOf(counts[i].value, i)}));
  }
  for (var j = 0; j < counts.length && j < 8; j++) {
    var ly = 16 + j*18;
    svg.appendChild(svgEl("rect", {x:175, y:ly-8, width:10, height:10, fill:colorOf(counts[j].value, j), rx:2}));
    var pct = Math.round(counts[j].count/total*1000)/10;
    svg.appendChild(svgText(190, ly+1, clip(counts[j].value || "(blank)", 16)+" "+pct+"%"));
  }
  c.appendChild(svg);
}

function renderRadar(id, radar) {
  var c = document.getElementById(id); if (!c) return;
  c.innerHTML = "";
  var n = radar.stages.length; if (!n) return;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 420 340"});
  var cx=210, cy=170, r=110;
  function pt(i, v) {
    var a = -Math.PI/2 + i*2*Math.PI/n;
    return [cx + r*v*Math.cos(a), cy + r*v*Math.sin(a)];
  }
  [0.5, 1].forEach(function(level) {
    var ring = [];
    for (var i = 0; i < n; i++) ring.push(pt(i, level).join(","));
    svg.appendChild(svgEl("polygon", {points:ring.join(" "), fill:"none", stroke:"var(--border)"}));
  });
  var shape = [];
  for (var i = 0; i < n; i++) {
    var e = pt(i, 1), l = pt(i, 1.12);
    svg.appendChild(svgEl("line", {x1:cx, y1:cy, x2:e[0], y2:e[1], stroke:"var(--border)"}));
    var anchor = Math.abs(l[0]-cx) < 5 ? "middle" : (l[0] > cx ? "start" : "end");
    svg.appendChild(svgText(l[0], l[1]+4, clip(radar.stages[i], 22), {"text-anchor":anchor, "font-size":"10"}));
    shape.push(pt(i, radar.scores[i]).join(","));
  }
  svg.appendChild(svgEl("polygon", {points:shape.join(" "), fill:"rgba(13,110,253,.35)", stroke:"var(--accent)", "stroke-width":2}));
  svg.appendChild(svgText(cx, 335, radar.completion.toFixed(1)+"% complete ("+radar.label+")", {"text-anchor":"middle"}));
  c.appendChild(svg);
}

function el(tag, cls, text) {
  var e = document.createElement(tag);
  if (cls) e.className = cls;
  if (text !== undefined) e.textContent = text;
  return e;
}

function renderDetail(d) {
  var c = document.getElementById("detail"); if (!c) return;
  c.innerHTML = "";
  c.appendChild(el("h3", "", d.project));
  var dl = el("dl", "meta");
  [["Founder", d.founder], ["Category", d.category], ["Decision", d.decision],
   ["Description", d.description], ["Contact", d.phone+" · "+d.email]].forEach(function(kv) {
    dl.appendChild(el("dt", "", kv[0])); dl.appendChild(el("dd", "", kv[1]));
  });
  c.appendChild(dl);
  if (d.novelty) {
    var box = el("div", "innovation");
    box.appendChild(el("strong", "", "Key Innovation"));
    box.appendChild(document.createElement("br"));
    box.appendChild(document.createTextNode(d.novelty));
    c.appendChild(box);
  }
  var row;
  d.cards.forEach(function(card, i) {
    if (i % 3 === 0) { row = el("div", "card-row"); c.appendChild(row); }
    var tile = el("div", "progress-card");
    tile.style.borderColor = card.color;
    tile.appendChild(el("strong", "", card.stage));
    var status = el("span", "progress-status", card.status);
    status.style.color = card.color;
    tile.appendChild(status);
    row.appendChild(tile);
  });
}

function selectProject(i) {
  if (!chartData.radars[i]) return;
  renderRadar("chart-radar", chartData.radars[i]);
  renderDetail(chartData.details[i]);
}

function applySearch() {
  var q = document.getElementById("filter-search").value.toLowerCase();
  var rows = document.querySelectorAll("tr.project-row");
  for (var i = 0; i < rows.length; i++) {
    rows[i].classList.toggle("hidden", q !== "" && rows[i].textContent.toLowerCase().indexOf(q) === -1);
  }
}

(function(){
  renderStackedBars("chart-stages");
  renderPie("chart-mvp", chartData.mvp, function(v) { return chartData.colors[v] || "var(--na)"; });
  renderPie("chart-categories", chartData.categories, function(_, i) { return palette[i % palette.length]; });
  var sel = document.getElementById("project-select");
  if (sel && chartData.radars.length) renderRadar("chart-radar", chartData.radars[sel.selectedIndex]);
})();
</script>
</body>
</html>`
