package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterStatic wires a tiny inline HTML page at GET "/".
func RegisterStatic(r *gin.Engine, maxBatch int) {
	const page = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>containerno</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Cantarell,Noto Sans,sans-serif;margin:0;padding:2rem;background:#0b0b0c;color:#e8e8ea}
.container{max-width:680px;margin:0 auto}
.card{background:#151517;border:1px solid #2b2b2f;border-radius:12px;padding:1.25rem;margin-bottom:1rem}
h1{font-size:1.25rem;margin:0 0 1rem}
input,button{font-size:1rem}
input[type=text]{padding:.75rem;border-radius:8px;border:1px solid #2b2b2f;background:#0f0f11;color:#e8e8ea}
.pos{width:2.5rem;text-align:center;text-transform:uppercase}
.row{display:flex;gap:.5rem;margin-top:.75rem;align-items:center}
.row button{padding:.75rem 1rem;border:1px solid #2b2b2f;background:#1f1f23;color:#e8e8ea;border-radius:8px;cursor:pointer}
small{opacity:.7}
code{font-size:1.1rem;letter-spacing:.05em}
ul{list-style:none;padding:0}
li{display:flex;justify-content:space-between;padding:.5rem 0;border-bottom:1px solid #2b2b2f}
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h1>containerno — ISO 6346 container numbers</h1>
    <small>Fixed prefix letters (leave empty for random)</small>
    <div class="row">
      <input class="pos" id="p0" type="text" maxlength="1"/>
      <input class="pos" id="p1" type="text" maxlength="1"/>
      <input class="pos" id="p2" type="text" maxlength="1"/>
      <input class="pos" id="p3" type="text" maxlength="1"/>
    </div>
    <div class="row">
      <button id="dec">-</button><span id="amount">1</span><button id="inc">+</button>
      <button id="go">Generate</button>
      <button id="all">Copy all</button>
    </div>
    <ul id="out"></ul>
  </div>
  <div class="card">
    <h1>Validate</h1>
    <div class="row">
      <input id="code" type="text" placeholder="CSQU3054383"/>
      <button id="check">Check</button>
    </div>
    <div id="verdict" style="margin-top:1rem"></div>
  </div>
  <p style="opacity:.7">API: <code>POST /api/generate</code>, <code>GET /api/validate/:code</code>, <code>GET /api/check-digit</code></p>
</div>
<script>
const MAX = {{MAX_BATCH}};
let amount = 1, numbers = [];
function setAmount(n){ amount = Math.min(MAX, Math.max(1, n)); document.getElementById('amount').textContent = amount; }
async function generate(){
  const prefix = [0,1,2,3].map(i => document.getElementById('p'+i).value.trim());
  const res = await fetch('/api/generate', {
    method:'POST',
    headers:{'Content-Type':'application/json'},
    body:JSON.stringify({count: amount, prefix})
  });
  const data = await res.json().catch(()=>({}));
  const out = document.getElementById('out');
  out.innerHTML = '';
  if(!res.ok){ out.textContent = data.error || 'error'; return; }
  numbers = data.numbers.map(n => n.number);
  for(const n of numbers){
    const li = document.createElement('li');
    const c = document.createElement('code'); c.textContent = n;
    const b = document.createElement('button'); b.textContent = 'Copy';
    b.onclick = () => navigator.clipboard.writeText(n);
    li.append(c, b); out.append(li);
  }
}
async function check(){
  const code = document.getElementById('code').value.trim().toUpperCase();
  const res = await fetch('/api/validate', {
    method:'POST',
    headers:{'Content-Type':'application/json'},
    body:JSON.stringify({code})
  });
  const v = await res.json().catch(()=>({}));
  const out = document.getElementById('verdict');
  if(v.valid){ out.textContent = code + ' is valid'; return; }
  out.textContent = v.reason === 'check_digit'
    ? code + ' is invalid: check digit should be ' + v.expected_check_digit
    : code + ' is not shaped like a container number (4 letters, 7 digits)';
}
document.getElementById('dec').onclick = () => setAmount(amount-1);
document.getElementById('inc').onclick = () => setAmount(amount+1);
document.getElementById('go').onclick = generate;
document.getElementById('all').onclick = () => navigator.clipboard.writeText(numbers.join('\n'));
document.getElementById('check').onclick = check;
generate();
</script>
</body>
</html>`
	body := []byte(strings.Replace(page, "{{MAX_BATCH}}", strconv.Itoa(maxBatch), 1))
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
	})
}
