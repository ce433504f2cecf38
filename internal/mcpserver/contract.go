package mcpserver

// DocumentFormatContract describes the canonical source document format that
// MCP consumers should follow when writing documents for the site.
const DocumentFormatContract = `# Dagaz Document Format

Every source document is a Markdown file with an optional metadata header.

## Structure

` + "```" + `markdown
title: Human-readable page title
date: 2024-01-15

# Page heading

Body text in standard Markdown (GFM tables, strikethrough, and autolinks
are supported).
` + "```" + `

## Rules

1. The metadata header is a block of ` + "`" + `key: value` + "`" + ` lines at the very top of
   the file, terminated by the first blank line. It is optional.
2. ` + "`" + `title` + "`" + ` names the document on the index page. Without it the document is
   listed untitled.
3. ` + "`" + `date` + "`" + ` accepts common formats (ISO 8601, "January 15, 2024", ...). A date
   that matches no known format aborts the build unless the site is
   configured to downgrade date errors to warnings.
4. Keys other than title and date are preserved but not interpreted.
5. When a key is declared more than once, the first value wins.
6. File names end with ` + "`" + `.md` + "`" + `; the output page takes the same name with
   ` + "`" + `.html` + "`" + `.
7. Encoding is UTF-8 with a trailing newline.
`
