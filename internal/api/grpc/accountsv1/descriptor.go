package accountsv1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	_ "google.golang.org/protobuf/types/known/emptypb"
	_ "google.golang.org/protobuf/types/known/structpb"
	_ "google.golang.org/protobuf/types/known/wrapperspb"
)

// FileName is the proto file path the service is registered under.
const FileName = "accounts/v1/accounts.proto"

// File describes the Accounts service for server reflection.
var File protoreflect.FileDescriptor

func init() {
	fd, err := buildFile()
	if err != nil {
		panic(fmt.Sprintf("accountsv1: %v", err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("accountsv1: %v", err))
	}
	File = fd
}

func buildFile() (protoreflect.FileDescriptor, error) {
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(in),
			OutputType: proto.String(out),
		}
	}

	const (
		structType = ".google.protobuf.Struct"
		stringType = ".google.protobuf.StringValue"
		emptyType  = ".google.protobuf.Empty"
	)

	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String(FileName),
		Package: proto.String("accounts.v1"),
		Syntax:  proto.String("proto3"),
		Dependency: []string{
			"google/protobuf/empty.proto",
			"google/protobuf/struct.proto",
			"google/protobuf/wrappers.proto",
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("Accounts"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("CreateUser", structType, structType),
				method("CreateSuperuser", structType, structType),
				method("GetUser", stringType, structType),
				method("UpdateUser", structType, emptyType),
				method("DeleteUser", stringType, emptyType),
				method("SetActive", structType, structType),
			},
		}},
	}

	return protodesc.NewFile(fdp, protoregistry.GlobalFiles)
}
