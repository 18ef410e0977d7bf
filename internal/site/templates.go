package site

// cardTemplate renders one project card. Fallback cards omit the
// external-link glyph, the star badge and the transition delay.
const cardTemplate = `<a href="{{.URL}}" target="_blank" rel="noopener" class="{{.Classes}}" id="{{.ID}}"{{with .TransitionDelay}} style="transition-delay: {{.}}"{{end}}>
  <div class="project-top">
    <div class="project-icon">{{.Icon}}</div>
    {{- if not .Fallback}}
    <div class="project-link-icon" title="View on GitHub">
      <svg viewBox="0 0 24 24" fill="currentColor" width="16" height="16">
        <path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6M15 3h6v6M10 14 21 3"/>
      </svg>
    </div>
    {{- end}}
  </div>
  <div class="project-name">{{.Name}}</div>
  <div class="project-desc">{{.Description}}</div>
  <div class="project-meta">
    {{- if .ShowLanguage}}
    <div class="project-lang"><div class="lang-dot" style="background: {{.Color}}"></div>{{.Language}}</div>
    {{- end}}
    {{- if .ShowStars}}
    <div class="project-lang project-stars">⭐ {{.Stars}}</div>
    {{- end}}
  </div>
</a>`

// pageTemplate is the html/template for the portfolio page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Name}} — {{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <nav class="navbar" id="navbar">
    <a class="nav-logo" href="#hero">{{.Initials}}</a>
    <div class="nav-links">
      <a href="#about">About</a>
      <a href="#projects">Projects</a>
      <a href="#contact">Contact</a>
    </div>
  </nav>

  <header class="hero" id="hero">
    <p class="hero-greeting">Hi, I'm</p>
    <h1 class="hero-name">{{.Name}}</h1>
    <p class="hero-title">{{.Title}}</p>
    {{- with .Tagline}}
    <p class="hero-tagline">{{.}}</p>
    {{- end}}
    <div class="hero-stats">
      <div class="stat"><span class="stat-value" id="stat-repos">–</span><span class="stat-label">Projects</span></div>
      <div class="stat"><span class="stat-value">{{len .Skills}}</span><span class="stat-label">Skills</span></div>
      <div class="stat"><span class="stat-value">{{.Year}}</span><span class="stat-label">Updated</span></div>
    </div>
  </header>

  <section class="section" id="about">
    <p class="section-label">About</p>
    <h2 class="section-title">A little about me</h2>
    <div class="about-grid">
      <div class="about-text">
        {{.About}}
        {{- if .Skills}}
        <div class="skill-tags">
          {{- range .Skills}}
          <span class="skill-tag">{{.}}</span>
          {{- end}}
        </div>
        {{- end}}
      </div>
      <div class="about-card">
        <div class="about-card-icon">🚀</div>
        <p>Shipping small, useful tools and experimenting with AI-powered interfaces.</p>
      </div>
    </div>
  </section>

  <section class="section" id="projects">
    <p class="section-label">Work</p>
    <h2 class="section-title">Recent projects</h2>
    <div class="projects-grid" id="projects-grid">
      <div class="projects-loading">Loading projects…</div>
    </div>
  </section>

  <section class="section" id="contact">
    <p class="section-label">Contact</p>
    <h2 class="section-title">Let's build something</h2>
    <div class="contact-grid">
      {{- with .Email}}
      <a class="contact-card" href="mailto:{{.}}"><span class="contact-icon">✉️</span><span>{{.}}</span></a>
      {{- end}}
      <a class="contact-card" href="https://github.com/{{.GitHub}}" target="_blank" rel="noopener"><span class="contact-icon">🐙</span><span>github.com/{{.GitHub}}</span></a>
    </div>
  </section>

  <footer class="footer">© {{.Year}} {{.Name}}</footer>
  <script src="script.js"></script>
</body>
</html>
`

const cssContent = `:root {
  --bg: #0b0b12;
  --surface: #151522;
  --border: #262638;
  --text: #e7e7f0;
  --muted: #9a9ab0;
  --accent: #8b5cf6;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
html { scroll-behavior: smooth; }
body { background: var(--bg); color: var(--text); font-family: system-ui, -apple-system, "Segoe UI", sans-serif; line-height: 1.6; }
a { color: inherit; text-decoration: none; }

.navbar { position: fixed; top: 0; left: 0; right: 0; z-index: 10; display: flex; justify-content: space-between; align-items: center; padding: 1.25rem 2rem; transition: background .3s, padding .3s, border-color .3s; border-bottom: 1px solid transparent; }
.navbar.scrolled { background: rgba(11, 11, 18, .85); backdrop-filter: blur(12px); padding: .75rem 2rem; border-bottom-color: var(--border); }
.nav-logo { font-weight: 700; font-size: 1.25rem; color: var(--accent); }
.nav-links a { margin-left: 1.5rem; color: var(--muted); }
.nav-links a:hover { color: var(--text); }

.hero { min-height: 90vh; display: flex; flex-direction: column; justify-content: center; padding: 0 2rem; max-width: 1100px; margin: 0 auto; }
.hero-greeting { color: var(--accent); font-weight: 600; }
.hero-name { font-size: clamp(2.5rem, 6vw, 4.5rem); line-height: 1.1; }
.hero-title { font-size: 1.5rem; color: var(--muted); }
.hero-tagline { margin-top: 1rem; max-width: 40rem; color: var(--muted); }
.hero-stats { display: flex; gap: 2.5rem; margin-top: 2.5rem; }
.stat { display: flex; flex-direction: column; }
.stat-value { font-size: 2rem; font-weight: 700; }
.stat-label { color: var(--muted); font-size: .85rem; text-transform: uppercase; letter-spacing: .08em; }

.section { max-width: 1100px; margin: 0 auto; padding: 6rem 2rem 2rem; }
.section-label { color: var(--accent); text-transform: uppercase; letter-spacing: .12em; font-size: .8rem; font-weight: 600; }
.section-title { font-size: 2.25rem; margin-bottom: 2rem; }

.about-grid { display: grid; grid-template-columns: 2fr 1fr; gap: 2rem; }
.about-text p { color: var(--muted); margin-bottom: 1rem; }
.skill-tags { display: flex; flex-wrap: wrap; gap: .5rem; }
.skill-tag { border: 1px solid var(--border); border-radius: 999px; padding: .25rem .85rem; font-size: .85rem; }
.about-card, .contact-card { background: var(--surface); border: 1px solid var(--border); border-radius: 16px; padding: 1.5rem; }
.about-card-icon { font-size: 2rem; margin-bottom: .5rem; }

.projects-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 1.25rem; }
.projects-loading { color: var(--muted); }
.project-card { display: flex; flex-direction: column; background: var(--surface); border: 1px solid var(--border); border-radius: 16px; padding: 1.5rem; transition: transform .25s, border-color .25s, opacity .6s, translate .6s; }
.project-card:hover { transform: translateY(-4px); border-color: var(--accent); }
.project-top { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1rem; }
.project-icon { font-size: 1.75rem; }
.project-link-icon { color: var(--muted); }
.project-name { font-weight: 600; font-size: 1.1rem; text-transform: capitalize; }
.project-desc { color: var(--muted); font-size: .92rem; flex: 1; margin: .5rem 0 1rem; }
.project-meta { display: flex; gap: 1rem; font-size: .85rem; color: var(--muted); }
.project-lang { display: flex; align-items: center; gap: .4rem; }
.lang-dot { width: 10px; height: 10px; border-radius: 50%; }

.contact-grid { display: flex; flex-wrap: wrap; gap: 1rem; }
.contact-card { display: flex; gap: .75rem; align-items: center; }
.footer { text-align: center; color: var(--muted); padding: 4rem 2rem 2rem; font-size: .85rem; }

.fade-in { opacity: 0; translate: 0 24px; transition: opacity .6s ease, translate .6s ease; }
.fade-in.visible { opacity: 1; translate: 0 0; }

@media (max-width: 720px) {
  .about-grid { grid-template-columns: 1fr; }
  .nav-links a { margin-left: 1rem; }
  .hero-stats { gap: 1.5rem; }
}
`

// jsContent is the page shim. It streams scroll and layout geometry to the
// viewport socket and applies the class operations it receives. When the
// socket is unavailable or drops, the same rules run in the page using the
// thresholds recorded on <body>.
const jsContent = `(function() {
  var grid = document.getElementById('projects-grid');
  if (grid && grid.hasAttribute('data-reveal-delay')) {
    var delay = parseInt(grid.getAttribute('data-reveal-delay'), 10) || 0;
    requestAnimationFrame(function() {
      grid.querySelectorAll('.project-card.fade-in').forEach(function(el) {
        setTimeout(function() { el.classList.add('visible'); }, delay);
      });
    });
  }

  var body = document.body;
  function option(name, fallback) {
    var v = parseFloat(body && body.getAttribute(name));
    return isNaN(v) ? fallback : v;
  }
  var navbarThreshold = option('data-navbar-threshold', 40);
  var fadeThreshold = option('data-fade-threshold', 0.1);
  var fadeMarginBottom = option('data-fade-margin-bottom', -40);

  var navbar = document.getElementById('navbar');
  var observed = Array.prototype.slice.call(document.querySelectorAll('[data-observe]'));

  function revealAll() {
    observed.forEach(function(el) { el.classList.add('visible'); });
  }

  function apply(ops) {
    (ops || []).forEach(function(op) {
      var el = document.getElementById(op.id);
      if (el) el.classList.toggle(op.class, op.on);
    });
  }

  var local = false;
  function onScrollLocal() {
    if (navbar) navbar.classList.toggle('scrolled', window.scrollY > navbarThreshold);
  }

  // runLocally applies the navbar and fade-in rules without the server.
  function runLocally() {
    if (local) return;
    local = true;
    window.addEventListener('scroll', onScrollLocal, { passive: true });
    onScrollLocal();

    if (!('IntersectionObserver' in window)) {
      revealAll();
      return;
    }
    var io = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (entry.isIntersecting && entry.intersectionRatio >= fadeThreshold) {
          entry.target.classList.add('visible');
          io.unobserve(entry.target);
        }
      });
    }, { threshold: fadeThreshold, rootMargin: '0px 0px ' + fadeMarginBottom + 'px 0px' });
    observed.forEach(function(el) {
      if (!el.classList.contains('visible')) io.observe(el);
    });
  }

  if (!('WebSocket' in window) || !location.host) {
    runLocally();
    return;
  }

  var ws, open = false;
  try {
    ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws/viewport');
  } catch (e) {
    runLocally();
    return;
  }

  function layout() {
    if (!open) return;
    var rects = observed.filter(function(el) {
      return !el.classList.contains('visible');
    }).map(function(el) {
      var r = el.getBoundingClientRect();
      return { id: el.id, x: r.left, y: r.top, width: r.width, height: r.height };
    });
    ws.send(JSON.stringify({
      type: 'layout',
      y: window.scrollY,
      viewport: { width: window.innerWidth, height: window.innerHeight },
      rects: rects
    }));
  }

  ws.onopen = function() {
    open = true;
    ws.send(JSON.stringify({ type: 'observe', ids: observed.map(function(el) { return el.id; }) }));
    layout();
  };
  ws.onmessage = function(ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === 'ops') apply(msg.ops);
  };
  // Covers both a failed connect and a socket that drops later.
  ws.onclose = function() {
    open = false;
    runLocally();
  };

  window.addEventListener('scroll', layout, { passive: true });
  window.addEventListener('resize', layout, { passive: true });
})();
`
