// Package paper parses the measurement vocabulary of the command line and
// configuration files: lengths with units ("10mm", "0.5in"), named and
// explicit paper sizes ("a4", "a5:landscape", "210mmx297mm"), margin lists,
// and linear creep functions of signature depth ("0.1x+2mm").
//
// Everything resolves to PostScript points, the native unit of the layout
// model.
package paper
