// Hydrology preview tool - interactive river/lake synthesis with sliders.
//
// Usage: go run ./cmd/hydropreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wellspring/hydro"
	"github.com/pthm-cable/wellspring/terrain"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30

	gridSize = 200

	minElevation = -1000
	maxElevation = 15000
)

// HydroParams holds the adjustable synthesis parameters.
type HydroParams struct {
	WaterLevel  float32
	Percentile  float32
	LakeDepth   float32
	MaxGradient float32
	Seed        int64
}

func defaultParams() HydroParams {
	return HydroParams{
		WaterLevel:  0,
		Percentile:  95,
		LakeDepth:   100,
		MaxGradient: 50,
		Seed:        42,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Hydrology Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	elevation := generateElevation(params.Seed)
	result := synthesize(elevation, params)
	updateTexture(texture, elevation, result)

	needsElevation := false
	needsHydro := false

	for !rl.WindowShouldClose() {
		if needsElevation {
			elevation = generateElevation(params.Seed)
			needsHydro = true
			needsElevation = false
		}
		if needsHydro {
			result = synthesize(elevation, params)
			updateTexture(texture, elevation, result)
			needsHydro = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Stats under the preview
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Seed: %d  Sources: %d  Water cells: %d",
			params.Seed, len(result.Sources), result.Mask.Count()), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Hydrology Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Water level slider
		rl.DrawText("Water level (submersion threshold)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newWaterLevel := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"-1000", "15000",
			params.WaterLevel, minElevation, maxElevation,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.WaterLevel), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newWaterLevel != params.WaterLevel {
			params.WaterLevel = newWaterLevel
			needsHydro = true
		}
		panelY += 35

		// Source percentile slider
		rl.DrawText("Source percentile (river origins)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newPercentile := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"50", "100",
			params.Percentile, 50, 100,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Percentile), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newPercentile != params.Percentile {
			params.Percentile = newPercentile
			needsHydro = true
		}
		panelY += 35

		// Lake depth slider
		rl.DrawText("Lake depth (fill above seed)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newLakeDepth := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "500",
			params.LakeDepth, 0, 500,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.LakeDepth), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newLakeDepth != params.LakeDepth {
			params.LakeDepth = newLakeDepth
			needsHydro = true
		}
		panelY += 35

		// Max gradient slider
		rl.DrawText("Max gradient (spill below seed)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newMaxGradient := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "500",
			params.MaxGradient, 0, 500,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.MaxGradient), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newMaxGradient != params.MaxGradient {
			params.MaxGradient = newMaxGradient
			needsHydro = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsElevation = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsElevation = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines(params) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func yamlLines(params HydroParams) []string {
	return []string{
		"hydrology:",
		fmt.Sprintf("  water_level: %.1f", params.WaterLevel),
		fmt.Sprintf("  source_percentile: %.1f", params.Percentile),
		fmt.Sprintf("  lake_depth: %.1f", params.LakeDepth),
		fmt.Sprintf("  max_gradient: %.1f", params.MaxGradient),
	}
}

func generateElevation(seed int64) *terrain.Field {
	gen := terrain.NewGenerator(seed)
	return gen.Elevation(0, 0, gridSize, gridSize, 50, 4, 0.5, minElevation, maxElevation)
}

func synthesize(elevation *terrain.Field, params HydroParams) *hydro.Result {
	result, err := hydro.Synthesize(elevation, hydro.Params{
		WaterLevel:       float64(params.WaterLevel),
		SourcePercentile: float64(params.Percentile),
		LakeDepth:        float64(params.LakeDepth),
		MaxGradient:      float64(params.MaxGradient),
	})
	if err != nil {
		// Sliders keep every parameter in range; a failure here is a bug.
		panic(err)
	}
	return result
}

// updateTexture renders elevation shading with the hydrology overlay: ocean
// blue below the water level, rivers widening toward light blue, lakes cyan.
func updateTexture(texture rl.Texture2D, elevation *terrain.Field, result *hydro.Result) {
	pixels := make([]color.RGBA, elevation.Len())
	for y := 0; y < elevation.H; y++ {
		for x := 0; x < elevation.W; x++ {
			i := elevation.Index(x, y)
			pixels[i] = cellColor(elevation, result, x, y)
		}
	}
	rl.UpdateTexture(texture, pixels)
}

func cellColor(elevation *terrain.Field, result *hydro.Result, x, y int) color.RGBA {
	switch c := result.Net.At(x, y); c.Kind {
	case hydro.Lake:
		return color.RGBA{R: 40, G: 190, B: 210, A: 255}
	case hydro.River:
		// Wider rivers draw lighter
		w := c.Width
		if w > 10 {
			w = 10
		}
		t := float32(w) / 10
		return color.RGBA{R: uint8(30 + t*60), G: uint8(90 + t*90), B: 235, A: 255}
	}

	if result.Mask.Water(x, y) {
		return color.RGBA{R: 15, G: 50, B: 140, A: 255}
	}

	// Land: dark green lowlands to white peaks
	t := float32((elevation.At(x, y) - minElevation) / (maxElevation - minElevation))
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(40 + t*215),
		G: uint8(110 + t*145),
		B: uint8(40 + t*215),
		A: 255,
	}
}
