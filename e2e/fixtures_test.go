//go:build e2e && unix

package main

// threeBoxes places a and b side by side on the first rows and c below them
const threeBoxes = `version = 1
log_file = "boxgrip.log"

[canvas]
additive_modifier = "shift"
toggle_modifier = "ctrl"
autosave_layout = false

[[boxes]]
id = "box-1"
label = "alpha"
x = 2
y = 1
w = 14
h = 4

[[boxes]]
id = "box-2"
label = "beta"
x = 30
y = 1
w = 14
h = 4

[[boxes]]
id = "box-3"
label = "gamma"
x = 2
y = 12
w = 14
h = 4
`
