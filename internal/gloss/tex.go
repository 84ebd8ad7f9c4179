package gloss

// Structural strings of a LaTeX table block.
const (
	BlockMarker   = `cell{5}{1} = {c=\columncnt}{l}`
	BlockEnd      = `\end{tblr}`
	DocumentEnd   = `\end{document}`
	CellSep       = " & "
	RowEnd        = ` \\`
	CaptionSep    = " — "
	enquoteOpen   = `\enquote{`
	enquoteClose  = `}`
	columnCountFn = `\renewcommand{\columncnt}{%d}`
)
