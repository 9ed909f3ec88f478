package data

import (
	"strconv"
	"strings"

	"github.com/project-mac/src/utils"
)

// String renders the instance as comma separated values in attribute
// order: "?" for a missing value, "?(truth)" for a masked one.
func (i *Instance) String() string {
	var str strings.Builder
	numAttributes := i.NumAttributes()
	for attIndex := 0; attIndex < numAttributes; attIndex++ {
		i.writeToken(&str, attIndex)
		if attIndex != numAttributes-1 {
			str.WriteString(",")
		}
	}
	return str.String()
}

// RenderSparse renders only the stored entries of the current view in the
// sparse ARFF form "{index value,...}".
func (i *Instance) RenderSparse() string {
	var str strings.Builder
	str.WriteString("{")
	for pos := 0; pos < i.NumValues(); pos++ {
		if pos > 0 {
			str.WriteString(",")
		}
		attIndex := i.Index(pos)
		str.WriteString(strconv.Itoa(attIndex))
		str.WriteString(" ")
		i.writeToken(&str, attIndex)
	}
	str.WriteString("}")
	return str.String()
}

func (i *Instance) writeToken(str *strings.Builder, attIndex int) {
	if i.IsMissing(attIndex) {
		str.WriteString("?")
	} else if i.IsMasked(attIndex) {
		str.WriteString("?(")
		i.writeAttributeValue(str, attIndex, true)
		str.WriteString(")")
	} else {
		i.writeAttributeValue(str, attIndex, false)
	}
}

func (i *Instance) writeAttributeValue(str *strings.Builder, attIndex int, masked bool) {
	value := i.instanceData.Value(attIndex)
	if masked {
		value = i.instanceOriginal.Value(attIndex)
	}
	if i.header == nil {
		str.WriteString(utils.FormatFloat(value))
		return
	}
	att := i.header.Attribute(attIndex)
	switch {
	case att.IsNominal():
		str.WriteString(att.Value(int(value)))
	case att.IsDate():
		str.WriteString(utils.FormatDate(value))
	default:
		//numeric, and string attributes which only hold an index here
		str.WriteString(utils.FormatFloat(value))
	}
}
