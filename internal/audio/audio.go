package audio

// Player plays one track at a time.
type Player interface {
	Load(file string) error
	Play()
	Stop()
	IsPlaying() bool
}

// Silent is used for the demo and whenever no audio device is available.
type Silent struct{}

func (Silent) Load(string) error { return nil }
func (Silent) Play() {}
func (Silent) Stop() {}
func (Silent) IsPlaying() bool { return false }
