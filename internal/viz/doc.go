// Package viz renders orbital isosurfaces to a braille terminal canvas.
//
// [Canvas] packs 2x4 sub-pixels into each character cell and tracks a
// per-cell wavefunction sign so opposite-phase lobes color differently.
// [Camera] projects normalized world coordinates with rotation and
// zoom; [RenderCloud] and [RenderMesh] draw the two isosurface
// representations.
package viz
