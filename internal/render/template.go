package render

const pageTemplate = `<style>
    .errorlens-body { font-family: Segoe UI, sans-serif; background-color: #282a36; color: #f8f8f2; margin: 15px; line-height: 1.6; }
    .errorlens-body h1, .errorlens-body h2, .errorlens-body h3 { color: #8be9fd; border-bottom: 1px solid #44475a; padding-bottom: 5px; }
    .errorlens-body pre { background-color: #1e1e1e; padding: 15px; border-radius: 8px; border: 1px solid #44475a; white-space: pre-wrap; word-wrap: break-word; }
    .errorlens-body code { font-family: Fira Code, Consolas, monospace; }
</style>
<div class="errorlens-body">
%s
</div>`
