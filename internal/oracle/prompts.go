package oracle

// SkipSentinel is the exact token the model must answer when a
// fragment has nothing worth quoting.
const SkipSentinel = "SKIP"

// systemPrompt frames the model as a careful reader.
const systemPrompt = `Eres un lector atento y culto. Tu trabajo es juzgar fragmentos ` +
	`sacados al azar de libros y, cuando valen la pena, rescatar de ellos una cita breve.`

// extractionPrompt is the fixed per-attempt template. The model must
// answer either the skip sentinel or a two-key JSON object, nothing else.
const extractionPrompt = `Te paso un fragmento del libro "%s".

Si el fragmento no contiene prosa sustantiva (portada, índice, datos de edición,
tablas, listas de capítulos), responde exactamente con la palabra SKIP y nada más.

Si contiene prosa aprovechable:
- Elige una cita literal breve, de como máximo dos oraciones.
- Escribe una reflexión corta sobre ella, de una o dos oraciones.

Responde únicamente con un objeto JSON con exactamente estas dos claves:
{"cita": "...", "reflexion": "..."}

Fragmento:
---
%s
---`
