// Package placeholder loads note templates and fills in their date tokens.
//
// A token is {{name}} or {{name:format}}. Recognized names:
//
//	{{title}}          current date as YYYY-MM-DD (format ignored)
//	{{date}}           current date, default YYYY-MM-DD
//	{{time}}           current time, default HH:mm
//	{{date:dddd Do}}   moment-style pattern, e.g. "Monday 15th"
//	{{time:%H.%M}}     a pattern containing % is read as strftime
//
// Unrecognized names, and tokens whose strftime pattern is invalid, are left
// in the output exactly as written. Substitution is one pass over the input:
// inserted values are never scanned again.
package placeholder
