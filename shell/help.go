package shell

import "io"

const helpText = `Commands:
  load <structure-file>   load a grid structure ('_' marks fillable cells)
  words <word-file>       load a vocabulary (one word per line)
  solve                   fill the grid; prints the result or "No solution."
  show                    print the last solution again
  save <output.png>       write the last solution as a PNG
  stats                   show candidate counts per slot after propagation
  set <key> <value>       change a setting (randomize, solve-timeout, ...)
  help                    this text
  exit                    leave the shell
`

func usage(w io.Writer) {
	io.WriteString(w, helpText)
}
