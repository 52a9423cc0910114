package mcpserver

// NoteFormatContract describes the note document the converter emits.
// LLM consumers should read it before relying on the converter output.
const NoteFormatContract = `# Transcription Note Format

Every converted note follows this structure.

## Structure

` + "```" + `markdown
---
type: transcription            # constant
created: 2026-08-23            # server-local date, ISO YYYY-MM-DD
source: superwhisper           # request source, or the default
template_version: 1            # constant
areas: []                      # constant empty list
projects: []                   # constant empty list
summary: ""                    # constant empty string
---

The trimmed transcription text, verbatim.
` + "```" + `

## Rules

1. **Frontmatter keys are fixed** and always appear in the order above.
2. **The body is the request text** with leading/trailing whitespace
   trimmed; nothing is rewritten or summarized.
3. **The created date and the filename timestamp** come from the server
   clock at conversion time, never from the request.
4. **Filenames** look like ` + "`" + `🎤 2026-08-23 3-07pm` + "`" + `: a marker, the date,
   then a 12-hour time with no leading zero on the hour, zero-padded
   minutes, and a lowercase am/pm suffix.
5. **Encoding** is UTF-8 with a trailing newline.
`
