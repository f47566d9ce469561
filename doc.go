// Package hachure builds cartographic hachure (slope-line) maps from a
// DEM-derived slope/aspect raster pair and a set of filled contour
// bands. It walks contours bottom-up, growing, cutting, and birthing
// aspect-integrated strokes so their spacing tracks local slope
// steepness. See package engine for the implementation.
package hachure
