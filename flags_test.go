package main

import (
	"flag"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(nil, ioutil.Discard)
	require.NoError(t, err)
	assert.Equal(t, options{
		width:      780,
		height:     520,
		viewHeight: 128,
		scale:      1,
		fps:        60,
	}, o)
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{
		"-scene", "room.yaml", "-width", "640", "-height", "480",
		"-view-height", "64", "-scale", "2", "-fps", "0",
		"-autopilot", "-smooth", "-debug",
	}, ioutil.Discard)
	require.NoError(t, err)
	assert.Equal(t, options{
		scene:      "room.yaml",
		width:      640,
		height:     480,
		viewHeight: 64,
		scale:      2,
		fps:        0,
		autopilot:  true,
		smooth:     true,
		debug:      true,
	}, o)
}

func TestParseFlagsRejects(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "0"},
		{"-height", "-4"},
		{"-view-height", "0"},
		{"-scale", "0"},
		{"-fps", "-1"},
		{"-bogus"},
	} {
		_, err := parseFlags(args, ioutil.Discard)
		assert.Error(t, err, "%v", args)
	}

	_, err := parseFlags([]string{"-h"}, ioutil.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}
