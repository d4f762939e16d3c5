package config

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// configFileDescriptor describes the config file schema, equivalent to:
//
//	syntax = "proto3";
//	package listheap;
//	message Logging {
//	  string log_level = 1;
//	  string log_handler_type = 2;
//	}
//	message Config {
//	  string sift_mode = 1;
//	  Logging logging = 2;
//	}
//
// Every leaf field is named after the command line flag it sets.
var configFileDescriptor = mustBuildConfigFile()

func stringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(typeName),
	}
}

func buildConfigFile() (protoreflect.FileDescriptor, error) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("listheap/config.proto"),
		Package: proto.String("listheap"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Logging"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("log_level", 1),
					stringField("log_handler_type", 2),
				},
			},
			{
				Name: proto.String("Config"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("sift_mode", 1),
					messageField("logging", 2, ".listheap.Logging"),
				},
			},
		},
	}
	fd, err := protodesc.NewFile(file, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}
	return fd, nil
}

func mustBuildConfigFile() protoreflect.FileDescriptor {
	fd, err := buildConfigFile()
	if err != nil {
		panic(err)
	}
	return fd
}

// configDescriptor returns the descriptor of the top level config message.
func configDescriptor() protoreflect.MessageDescriptor {
	return configFileDescriptor.Messages().ByName(protoreflect.Name("Config"))
}

// newConfig returns an empty config message.
func newConfig() *dynamicpb.Message {
	return dynamicpb.NewMessage(configDescriptor())
}
