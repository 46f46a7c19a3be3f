package config

// DefaultSystemPrompt seeds every fresh conversation.
const DefaultSystemPrompt = "You are a friendly AI coding buddy for beginners. " +
	"Create runnable HTML, CSS and JS in a single HTML document that runs directly in an iframe. " +
	"Keep everything as simple and short as possible: little CSS, no heavy frameworks, " +
	"and animations only when explicitly asked for."

// StarterCode is the document both buffers start with.
const StarterCode = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>Viber Lab</title>
    <style>
      body {
        font-family: 'Space Grotesk', sans-serif;
        background: radial-gradient(circle at top, #f8f1ff, #f0fbff);
        min-height: 100vh;
        margin: 0;
        display: grid;
        place-items: center;
      }
      .card {
        background: white;
        padding: 3rem;
        border-radius: 24px;
        box-shadow: 0 20px 80px rgba(15, 23, 42, 0.15);
        text-align: center;
      }
      h1 {
        margin-bottom: 0.5rem;
        font-size: 2.5rem;
        color: #111827;
      }
      p {
        color: #475569;
        font-size: 1.25rem;
      }
    </style>
  </head>
  <body>
    <div class="card">
      <h1>Welcome to Viber Lab!</h1>
      <p>Ask the AI to put code here, then hit "Run".</p>
    </div>
  </body>
</html>`
