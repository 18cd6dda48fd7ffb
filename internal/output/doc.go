// Package output provides structured output and error handling for the yournal CLI.
//
// # Printer
//
// Every command writes through a Printer so that human and JSON output stay
// consistent:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Opened 2024-01-15.md", "path": path})
//	printer.Error(err)
//
// Human output is styled with lipgloss; styles are dropped when the stream is
// not a terminal or --color never is given. Status lines for --verbose go to
// the error writer through Printer.Stderr.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: missing template, editor not found, unsupported OS, bad usage
//	output.ExitSystemError // 2: filesystem failure, editor exited non-zero
//
// Errors built with NewUserError / NewSystemError carry their code, which
// GetExitCode extracts for os.Exit.
package output
