// The font subpackage bridges real font files and fontmet baselines:
// it parses .ttf and .otf fonts and measures character widths at a
// given size, producing the ready-made baseline maps that fontmet's
// builder expects. A [Library] type is also included to assist with
// font management if you deal with more than a couple fonts.
//
// fontmet's core never touches font files itself; this package is the
// collaborator that feeds it. If your baseline widths come from
// somewhere else, you don't need anything in here.
package font
