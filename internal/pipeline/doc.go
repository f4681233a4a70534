// Package pipeline implements the auto-paragraph passes.
//
// Each pass is a pure string transformation, exported so it can be exercised
// on its own. Autop.Run chains them in a fixed order:
//   - <pre> extraction behind placeholders
//   - structural normalization (block spacing, line endings, tag newlines)
//   - paragraph wrapping at blank lines
//   - paragraph cleanup around block markup
//   - optional <br /> insertion and cleanup
//   - <!--more--> substitution
//   - restoration of <pre> blocks and tag newlines
//
// HTML is never parsed into a tree. Markup is recognized by the flat
// tokenizer in internal/htmlsplit and by regular expressions built from
// BlockTags.
package pipeline
