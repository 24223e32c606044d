package model

import (
	"github.com/uyouii/confidence-interval/common"
)

// Distribution selects the reference distribution of the critical point.
type Distribution int

const (
	DistributionUnknown Distribution = 0
	StudentsT           Distribution = 1
	Normal              Distribution = 2
)

const (
	StudentsTName = "StudentsT"
	NormalName    = "Normal"
)

func AllDistributionNames() []string {
	return []string{StudentsTName, NormalName}
}

func ParseDistribution(name string) (Distribution, error) {
	switch name {
	case StudentsTName:
		return StudentsT, nil
	case NormalName:
		return Normal, nil
	}
	return DistributionUnknown, common.NewInvalidArgument("distribution", name,
		"unknown distribution", AllDistributionNames()...)
}

func (d Distribution) Valid() bool {
	return d == StudentsT || d == Normal
}

func (d Distribution) String() string {
	switch d {
	case StudentsT:
		return StudentsTName
	case Normal:
		return NormalName
	}
	return "Unknown"
}

func (d Distribution) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, common.NewInvalidArgument("distribution", int(d),
			"unknown distribution", AllDistributionNames()...)
	}
	return []byte(d.String()), nil
}

func (d *Distribution) UnmarshalText(text []byte) error {
	parsed, err := ParseDistribution(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
