package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Key names one face texture.
type Key struct {
	Card int
	Back bool
}

// cached holds a face texture and the card version it was painted for.
type cached struct {
	tex     rl.Texture2D
	version int
}

// Registry owns the card face quad and one texture per card face. The quad and the
// textures are created on first use so that GPU resources are allocated after the
// window/OpenGL context exists.
type Registry struct {
	mesh  rl.Mesh
	mtl   rl.Material
	ready bool
	faces map[Key]cached
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{faces: make(map[Key]cached)}
}

// faceResolution: 1 subdivision = single quad.
const faceResolution = 1

// ensureMesh creates the unit quad. raylib planes lie in XZ facing +Y; FaceTransform
// turns them to face +Z.
func (r *Registry) ensureMesh() {
	if r.ready {
		return
	}
	r.mesh = rl.GenMeshPlane(1, 1, faceResolution, faceResolution)
	r.mtl = rl.LoadMaterialDefault()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	r.ready = true
}

// Texture returns the texture for key, painting it again when version differs from the
// one it was painted for. paint draws into a width×height render target with (0,0) at the
// top left.
func (r *Registry) Texture(key Key, version int, width, height int32, paint func()) rl.Texture2D {
	if c, ok := r.faces[key]; ok && c.version == version {
		return c.tex
	}
	if c, ok := r.faces[key]; ok {
		rl.UnloadTexture(c.tex)
	}
	target := rl.LoadRenderTexture(width, height)
	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Blank)
	paint()
	rl.EndTextureMode()

	// render targets are stored bottom-up
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.UnloadRenderTexture(target)
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	r.faces[key] = cached{tex: tex, version: version}
	return tex
}

// Len returns the number of cached face textures.
func (r *Registry) Len() int {
	return len(r.faces)
}

// Draw draws tex on the face quad placed by transform (see FaceTransform).
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(tex rl.Texture2D, transform rl.Matrix, tint rl.Color) {
	if !rl.IsTextureValid(tex) {
		return
	}
	r.ensureMesh()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	rl.SetMaterialTexture(&r.mtl, rl.MapAlbedo, tex)
	rl.DrawMesh(r.mesh, r.mtl, transform)
}

// Unload frees every texture and the quad.
func (r *Registry) Unload() {
	for k, c := range r.faces {
		rl.UnloadTexture(c.tex)
		delete(r.faces, k)
	}
	if r.ready {
		rl.UnloadMesh(&r.mesh)
		r.ready = false
	}
}
