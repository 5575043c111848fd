package i3wm

import "github.com/mj1618/workspace-output/internal/platform"

func init() {
	platform.ConnectFunc = func(opts platform.ConnectOptions) (platform.Session, error) {
		s, err := Connect(opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
