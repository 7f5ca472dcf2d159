// Package console handles everything the user sees and types.
//
// Output text may carry semantic tags such as {{_Var_}} or direct style tags
// such as {{|cyan::b|}}. They are rendered to ANSI escape sequences when
// stdout is a terminal and stripped otherwise.
//
// Input is read through a LineReader. On a terminal each prompt runs a small
// line editor with tab-completion; on pipes and files a plain line scanner is
// used.
package console
