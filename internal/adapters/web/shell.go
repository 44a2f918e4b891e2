package web

// pageShell is the static HTML frame around every rendered page. The two
// %s verbs are the navigation region and main content region markup, both
// already escaped by the view builders.
const pageShell = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>World Atlas</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f3f4f6; color: #111827; }
nav { padding: 12px 20px; background: #111827; }
nav a { color: #e5e7eb; margin-right: 14px; text-decoration: none; }
main { max-width: 920px; margin: 0 auto; padding: 20px; }
.card { background: #fff; border-radius: 10px; padding: 18px 20px; margin-bottom: 16px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
.card.error { border: 1px solid #ef4444; }
.heroTitle { margin: 0 0 6px; }
.sectionTitle { margin: 0 0 10px; }
.small { color: #6b7280; font-size: 13px; }
.placeholder { color: #6b7280; font-style: italic; }
.buttonRow a.button { display: inline-block; margin: 4px 8px 4px 0; padding: 8px 14px; background: #2563eb; color: #fff; border-radius: 8px; text-decoration: none; }
.statusCard { margin-top: 14px; border: 1px solid #e5e7eb; border-radius: 8px; padding: 12px; }
.statusCard.fail { border-color: #ef4444; }
.legend { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 12px; }
.legend li { display: flex; align-items: center; font-size: 13px; }
.swatch { display: inline-block; width: 12px; height: 12px; border-radius: 3px; margin-right: 6px; }
table { border-collapse: collapse; width: 100%%; }
td, th { padding: 6px 8px; border-bottom: 1px solid #e5e7eb; text-align: left; font-size: 14px; }
.profileHeader { display: flex; gap: 18px; align-items: center; }
.flag { width: 96px; border-radius: 6px; }
.motto { font-style: italic; }
.countryList { columns: 2; }
</style>
</head>
<body>
<nav>%s</nav>
<main>%s</main>
</body>
</html>
`
