package db

import "time"

// samplePosts are inserted once, when the posts table is created
// empty. Ages are relative to the seeding moment so the blog starts
// with a plausible recent history.
var samplePosts = []struct {
	title   string
	content string
	image   string
	age     time.Duration
}{
	{
		title: "Welcome to Our Tech Blog",
		content: `# Welcome to Our Tech Blog

We're excited to share our thoughts on technology, programming, and innovation with you.

## What We'll Cover

- **Web Development**: Latest trends in frontend and backend development
- **Programming Languages**: Deep dives into various programming languages
- **DevOps & Cloud**: Best practices for deployment and scaling
- **AI & Machine Learning**: Exploring the future of artificial intelligence

## Our Mission

Our goal is to provide valuable insights and practical knowledge that helps developers and tech enthusiasts stay updated with the rapidly evolving world of technology.

Stay tuned for more exciting content!`,
		image: "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?auto=format&fit=crop&w=1000&q=80",
		age:   48 * time.Hour,
	},
	{
		title: "Getting Started with Go Web Services",
		content: `# Getting Started with Go Web Services

Go's standard library gives you almost everything you need to build a production web service.

## A Minimal Server

` + "```go" + `
mux := http.NewServeMux()
mux.HandleFunc("GET /posts", listPosts)
log.Fatal(http.ListenAndServe(":8080", mux))
` + "```" + `

## Why Go?

- Single static binary, trivial deployment
- Built-in HTTP server and JSON encoding
- Great concurrency primitives when you eventually need them

Start small, measure, and only add dependencies when the standard library runs out.`,
		image: "https://images.unsplash.com/photo-1555949963-aa79dcee981c?auto=format&fit=crop&w=1000&q=80",
		age:   24 * time.Hour,
	},
	{
		title: "Writing Markdown That Renders Everywhere",
		content: `# Writing Markdown That Renders Everywhere

Markdown is the lingua franca of technical writing, but not every renderer agrees on the details.

## Stick to the Common Core

Headings, emphasis, lists, links, and fenced code blocks behave the same almost everywhere:

` + "```markdown" + `
## A Heading

Some *emphasis*, a [link](https://example.com), and:

- a list
- of items
` + "```" + `

## Avoid the Edge Cases

Tables, footnotes, and raw HTML vary between renderers. If your post must look identical on every platform, keep to the core syntax and preview before publishing.`,
		image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=1000&q=80",
		age:   0,
	},
}
