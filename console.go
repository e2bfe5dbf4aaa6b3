package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/seqsense/cubeview/viewport"
)

type viewController interface {
	State() viewport.ViewState
	Camera() viewport.CameraParams
	SetDistance(float64)
	SetFocalLengthFloat(float64)
	OnScroll(float64)
}

type console struct {
	vc viewController
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

var consoleCommands = map[string]func(vc viewController, args []float64) ([][]float64, error){
	"distance": func(vc viewController, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 1:
			vc.SetDistance(args[0])
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{{vc.State().Distance}}, nil
	},
	"focal_length": func(vc viewController, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 1:
			vc.SetFocalLengthFloat(args[0])
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{{float64(vc.State().FocalLength)}}, nil
	},
	"magnification": func(vc viewController, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float64{{vc.State().Magnification}}, nil
	},
	"scroll": func(vc viewController, args []float64) ([][]float64, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		vc.OnScroll(args[0])
		return [][]float64{{vc.State().Distance}}, nil
	},
	"state": func(vc viewController, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		s := vc.State()
		return [][]float64{{s.Distance, float64(s.FocalLength), s.Magnification}}, nil
	},
	"camera": func(vc viewController, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		c := vc.Camera()
		return [][]float64{{c.FOV, c.PositionZ, c.Aspect}}, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float64
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, f)
	}
	res, err := fn(c.vc, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(v, 'f', 3, 64))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
