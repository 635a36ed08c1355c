package dashboard

import (
	"fmt"

	"github.com/vilaca/release-dashboard/internal/prlink"
)

// htmlHead returns the common HTML head section with proper meta tags.
func htmlHead(title, description string) string {
	if description == "" {
		description = "Track releases and the pull requests that shipped in them"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0, viewport-fit=cover">
	<meta name="description" content="%s">
	<meta name="author" content="Release Dashboard">

	<title>%s - Release Dashboard</title>
	%s
</head>`, escapeHTML(description), escapeHTML(title), commonCSS())
}

// commonCSS returns the shared CSS styles used across all pages.
func commonCSS() string {
	return `<style>
		:root {
			--bg-primary: #f5f5f5;
			--bg-secondary: white;
			--text-primary: #333;
			--text-secondary: #666;
			--link-color: #0066cc;
			--button-bg: #0066cc;
			--button-hover: #0052a3;
			--border-color: #e0e0e0;
			--shadow: rgba(0,0,0,0.1);
		}

		[data-theme="dark"] {
			--bg-primary: #1a1a1a;
			--bg-secondary: #2d2d2d;
			--text-primary: #e0e0e0;
			--text-secondary: #b0b0b0;
			--link-color: #4d9fff;
			--button-bg: #4d9fff;
			--button-hover: #3d89ef;
			--border-color: #404040;
			--shadow: rgba(0,0,0,0.3);
		}

		* { box-sizing: border-box; margin: 0; padding: 0; }

		body {
			font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
			padding: 20px;
			background: var(--bg-primary);
			color: var(--text-primary);
			transition: background-color 0.3s, color 0.3s;
			line-height: 1.6;
		}

		.container { max-width: 1200px; margin: 0 auto; }

		h1 { margin-bottom: 10px; font-size: 2rem; font-weight: 600; }

		.nav { margin-bottom: 30px; display: flex; align-items: center; gap: 15px; flex-wrap: wrap; }
		.nav a { color: var(--link-color); text-decoration: none; }
		.nav a:hover { text-decoration: underline; }

		.theme-toggle {
			padding: 8px 16px;
			background: var(--button-bg);
			color: white;
			border: none;
			border-radius: 4px;
			cursor: pointer;
			font-size: 14px;
		}
		.theme-toggle:hover { background: var(--button-hover); }

		a { color: var(--link-color); }
		a:focus { outline: 2px solid var(--link-color); outline-offset: 2px; }

		/* Pull request links */
		.btn {
			display: inline-block;
			border: 1px solid var(--border-color);
			border-radius: 4px;
			background: var(--bg-secondary);
			color: var(--text-primary);
			text-decoration: none;
		}
		.btn-sm { padding: 2px 8px; font-size: 12px; }
		.btn:hover { border-color: var(--link-color); }
		.inline-commit { font-family: monospace; text-decoration: none; }
		.icon { fill: currentColor; }

		table { width: 100%; border-collapse: collapse; background: var(--bg-secondary); box-shadow: 0 2px 4px var(--shadow); }
		th, td { padding: 10px 12px; border-bottom: 1px solid var(--border-color); text-align: left; font-size: 14px; }
		th { color: var(--text-secondary); font-size: 12px; text-transform: uppercase; }

		.empty { text-align: center; padding: 40px; color: var(--text-secondary); font-size: 16px; }
		.meta-text { color: var(--text-secondary); font-size: 14px; }
	</style>`
}

// iconSprite returns the SVG symbols referenced by pull request links.
func iconSprite() string {
	return `<svg xmlns="http://www.w3.org/2000/svg" style="display: none">
		<symbol id="icon-github" viewBox="0 0 16 16"><path d="M8 0C3.58 0 0 3.58 0 8c0 3.54 2.29 6.53 5.47 7.59.4.07.55-.17.55-.38 0-.19-.01-.82-.01-1.49-2.01.37-2.53-.49-2.69-.94-.09-.23-.48-.94-.82-1.13-.28-.15-.68-.52-.01-.53.63-.01 1.08.58 1.23.82.72 1.21 1.87.87 2.33.66.07-.52.28-.87.51-1.07-1.78-.2-3.64-.89-3.64-3.95 0-.87.31-1.59.82-2.15-.08-.2-.36-1.02.08-2.12 0 0 .67-.21 2.2.82.64-.18 1.32-.27 2-.27.68 0 1.36.09 2 .27 1.53-1.04 2.2-.82 2.2-.82.44 1.1.16 1.92.08 2.12.51.56.82 1.27.82 2.15 0 3.07-1.87 3.75-3.65 3.95.29.25.54.73.54 1.48 0 1.07-.01 1.93-.01 2.2 0 .21.15.46.55.38A8.013 8.013 0 0016 8c0-4.42-3.58-8-8-8z"/></symbol>
		<symbol id="icon-bitbucket" viewBox="0 0 16 16"><path d="M.5 1a.5.5 0 00-.5.58l2.1 12.8a.7.7 0 00.68.58h10.1a.5.5 0 00.5-.42L15.99 1.58A.5.5 0 0015.5 1H.5zm9.3 9.2H6.26L5.3 5.8h5.4l-.9 4.4z"/></symbol>
	</svg>`
}

// themeToggleScript returns the common theme toggle JavaScript.
func themeToggleScript() string {
	return `<script>
		function toggleTheme() {
			const html = document.documentElement;
			const currentTheme = html.getAttribute('data-theme');
			const newTheme = currentTheme === 'dark' ? 'light' : 'dark';
			html.setAttribute('data-theme', newTheme);
			localStorage.setItem('theme', newTheme);
			updateToggleButton(newTheme);
		}

		function updateToggleButton(theme) {
			const button = document.querySelector('.theme-toggle');
			if (button) {
				button.textContent = theme === 'dark' ? '☀️ Light Mode' : '🌙 Dark Mode';
				button.setAttribute('aria-label', theme === 'dark' ? 'Switch to light mode' : 'Switch to dark mode');
			}
		}

		// Initialize theme from localStorage
		(function() {
			const savedTheme = localStorage.getItem('theme') || 'light';
			document.documentElement.setAttribute('data-theme', savedTheme);
			updateToggleButton(savedTheme);
		})();
	</script>`
}

// htmlFooter returns the common HTML footer with all scripts.
func htmlFooter() string {
	return themeToggleScript() + `
</body>
</html>`
}

// buildNavigation returns the common navigation bar HTML.
func buildNavigation() string {
	return `<div class="nav">
			<a href="/">Releases</a>
			<a href="/api/health">Health</a>
			<button class="theme-toggle" onclick="toggleTheme()" aria-label="Toggle theme">🌙 Dark Mode</button>
		</div>`
}

// escapeHTML escapes text the same way pull request links do.
func escapeHTML(s string) string {
	return prlink.EscapeHTML(s)
}

// externalLink creates a safe external link with proper security attributes.
func externalLink(url, text string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
		escapeHTML(url), escapeHTML(text))
}
