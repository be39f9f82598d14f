package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/coinhop/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="18" tileheight="18" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="18" tileheight="18" tilecount="4" columns="2">
  <image source="tiles.png" width="36" height="36"/>
  <tile id="0">
   <properties>
    <property name="collides" type="bool" value="true"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="collides" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="BG" width="4" height="3">
  <data encoding="csv">
2,2,2,2,
2,2,2,2,
2,2,2,2
</data>
 </layer>
 <layer id="2" name="Ground-n-Platforms" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,2,1
</data>
 </layer>
 <layer id="3" name="Killables" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,3,0,0,
0,0,0,0
</data>
 </layer>
 <layer id="4" name="Water" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
0,0,0,0
</data>
 </layer>
 <objectgroup id="5" name="Objects">
  <object id="1" name="coin" gid="4" x="18" y="36" width="18" height="18"/>
  <object id="2" name="coin" gid="4" x="36" y="36" width="18" height="18"/>
  <object id="3" name="sign" gid="4" x="54" y="36" width="18" height="18"/>
 </objectgroup>
</map>
`

const testManifest = `
images:
  - key: tiles
    path: tiles.png
spritesheets:
  - key: sheet
    path: tiles.png
    frame_width: 18
    frame_height: 18
atlases:
  - key: chars
    path: chars.png
    data: chars.json
multiatlases:
  - key: fx
    data: fx/fx.json
tilemaps:
  - key: level
    path: level.tmx
audio:
  - key: beep
    path: beep.wav
`

func testFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"manifest.yaml": {Data: []byte(testManifest)},
		"tiles.png":     {Data: pngBytes(t, 36, 36)},
		"chars.png":     {Data: pngBytes(t, 48, 24)},
		"chars.json": {Data: []byte(`{"frames":{
			"tile_0000.png":{"frame":{"x":0,"y":0,"w":24,"h":24}},
			"tile_0001.png":{"frame":{"x":24,"y":0,"w":24,"h":24}}},
			"meta":{"image":"ignored.png"}}`)},
		"fx/fx-0.png": {Data: pngBytes(t, 64, 32)},
		"fx/fx.json": {Data: []byte(`{"textures":[{"image":"fx-0.png","frames":[
			{"filename":"smoke_03.png","frame":{"x":0,"y":0,"w":32,"h":32}},
			{"filename":"smoke_09.png","frame":{"x":32,"y":0,"w":32,"h":32}}]}]}`)},
		"level.tmx": {Data: []byte(testTMX)},
		"beep.wav":  {Data: []byte("RIFF")},
	}
}

func TestPreloadLoadsEveryKind(t *testing.T) {
	r, err := Preload(testFS(t), "manifest.yaml")
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}

	rect, err := r.FrameRect("sheet", 3)
	if err != nil {
		t.Fatalf("FrameRect: %v", err)
	}
	if want := image.Rect(18, 18, 36, 36); rect != want {
		t.Errorf("frame 3 = %v, want %v", rect, want)
	}

	fr, err := r.AtlasFrameInfo("chars", "tile_0001.png")
	if err != nil {
		t.Fatalf("AtlasFrameInfo: %v", err)
	}
	if fr.Page != "chars.png" || fr.Rect != image.Rect(24, 0, 48, 24) {
		t.Errorf("chars frame = %+v", fr)
	}

	fr, err = r.AtlasFrameInfo("fx", "smoke_09.png")
	if err != nil {
		t.Fatalf("AtlasFrameInfo multiatlas: %v", err)
	}
	if fr.Page != "fx/fx-0.png" {
		t.Errorf("multiatlas page = %q", fr.Page)
	}

	if _, err := r.Tilemap("level"); err != nil {
		t.Errorf("Tilemap: %v", err)
	}
	if b, err := r.Sound("beep"); err != nil || string(b) != "RIFF" {
		t.Errorf("Sound = %q, %v", b, err)
	}
}

func TestRegistryLookupErrors(t *testing.T) {
	r, err := Preload(testFS(t), "manifest.yaml")
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}

	if _, err := r.FrameRect("nope", 0); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown sheet err = %v", err)
	}
	if _, err := r.FrameRect("sheet", 4); !errors.Is(err, ErrUnknownFrame) {
		t.Errorf("out of range frame err = %v", err)
	}
	if _, err := r.FrameRect("sheet", -1); !errors.Is(err, ErrUnknownFrame) {
		t.Errorf("negative frame err = %v", err)
	}
	if _, err := r.AtlasFrameInfo("fx", "smoke_99.png"); !errors.Is(err, ErrUnknownFrame) {
		t.Errorf("unknown atlas frame err = %v", err)
	}
	if _, err := r.Tilemap("level-2"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown tilemap err = %v", err)
	}
	if _, err := r.Sound("boom"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown sound err = %v", err)
	}
}

func TestPreloadReportsMissingFileWithKey(t *testing.T) {
	fsys := testFS(t)
	delete(fsys, "beep.wav")

	_, err := Preload(fsys, "manifest.yaml")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "beep") || !strings.Contains(err.Error(), "beep.wav") {
		t.Errorf("error %q does not name the key and path", err)
	}
}

func TestPreloadRejectsFrameOutsidePage(t *testing.T) {
	fsys := testFS(t)
	fsys["chars.png"] = &fstest.MapFile{Data: pngBytes(t, 24, 24)}

	if _, err := Preload(fsys, "manifest.yaml"); err == nil {
		t.Fatal("expected error for frame outside its page")
	}
}

func TestParseLevelFull(t *testing.T) {
	r, err := Preload(testFS(t), "manifest.yaml")
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}
	m, _ := r.Tilemap("level")

	features := config.SceneFeatures{
		Layers: []config.LayerSpec{
			{Name: "BG", Role: config.LayerDecor},
			{Name: "Ground-n-Platforms", Role: config.LayerSolid},
			{Name: "Killables", Role: config.LayerKillable},
			{Name: "Water", Role: config.LayerWater},
		},
		Coins: true,
	}
	level, err := ParseLevel("level", m, features)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}

	if level.Width != 72 || level.Height != 54 {
		t.Errorf("size = %dx%d, want 72x54", level.Width, level.Height)
	}

	var solid, killable int
	for _, tile := range level.Tiles {
		switch tile.Role {
		case config.LayerSolid:
			solid++
			if tile.Y != 36 {
				t.Errorf("solid tile at y=%v, want 36", tile.Y)
			}
		case config.LayerKillable:
			killable++
			if tile.X != 18 || tile.Y != 18 {
				t.Errorf("killable tile at %v,%v", tile.X, tile.Y)
			}
		default:
			t.Errorf("unexpected role %v", tile.Role)
		}
	}
	// gid 2 (id 1) has no collides property
	if solid != 3 {
		t.Errorf("solid tiles = %d, want 3", solid)
	}
	if killable != 1 {
		t.Errorf("killable tiles = %d, want 1", killable)
	}

	if len(level.Coins) != 2 {
		t.Fatalf("coins = %d, want 2", len(level.Coins))
	}
	if c := level.Coins[0]; c.X != 18 || c.Y != 18 || c.Width != 18 {
		t.Errorf("coin 0 = %+v", c)
	}
	if len(level.Layers) != 4 || level.Layers[0] != "BG" {
		t.Errorf("layers = %v", level.Layers)
	}
}

func TestParseLevelMissingLayer(t *testing.T) {
	r, err := Preload(testFS(t), "manifest.yaml")
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}
	m, _ := r.Tilemap("level")

	features := config.SceneFeatures{Layers: []config.LayerSpec{{Name: "Flag"}}}
	if _, err := ParseLevel("level", m, features); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("err = %v, want ErrUnknownKey", err)
	}
}

func TestEmbeddedAssetsLoad(t *testing.T) {
	r, err := Preload(FS(), ManifestPath)
	if err != nil {
		t.Fatalf("Preload embedded: %v", err)
	}

	for _, f := range config.Platforms.Frames {
		if _, err := r.FrameRect(config.Platforms.SheetKey, f); err != nil {
			t.Errorf("platform frame %d: %v", f, err)
		}
	}
	if _, err := r.FrameRect(config.Levels.CoinSheet, config.Levels.CoinFrame); err != nil {
		t.Errorf("coin frame: %v", err)
	}
	for _, name := range config.VFX.Frames {
		if _, err := r.AtlasFrameInfo(config.VFX.AtlasKey, name); err != nil {
			t.Errorf("vfx frame %s: %v", name, err)
		}
	}
	for state, def := range config.CharacterAnimations["player"] {
		for _, name := range def.Frames {
			if _, err := r.AtlasFrameInfo(config.CharacterAtlas, name); err != nil {
				t.Errorf("%v frame %s: %v", state, name, err)
			}
		}
	}
	for _, key := range config.Sound.SFXKeys {
		if _, err := r.Sound(key); err != nil {
			t.Errorf("sound %s: %v", key, err)
		}
	}

	m, err := r.Tilemap(config.Levels.TilemapKey)
	if err != nil {
		t.Fatalf("tilemap: %v", err)
	}
	for _, v := range []config.Variant{config.VariantFull, config.VariantBasic} {
		features := config.Features(v)
		level, err := ParseLevel(config.Levels.TilemapKey, m, features)
		if err != nil {
			t.Fatalf("%v: ParseLevel: %v", v, err)
		}
		if features.Coins && len(level.Coins) == 0 {
			t.Errorf("%v: no coins", v)
		}
		if !features.Coins && len(level.Coins) != 0 {
			t.Errorf("%v: coins without the feature", v)
		}
		if features.HasRole(config.LayerWater) {
			if !hasRole(level, config.LayerWater) || !hasRole(level, config.LayerKillable) {
				t.Errorf("%v: hazard tiles missing", v)
			}
		}
	}
}

func hasRole(l *Level, role config.LayerRole) bool {
	for _, tile := range l.Tiles {
		if tile.Role == role {
			return true
		}
	}
	return false
}
